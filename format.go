package errtaxonomy

import "fmt"

// Format renders any taxonomy error in the canonical form shared by the whole
// taxonomy:
//
//	[{message_code}] {class} ({status}): {message}
//
// This is the single point of truth for log lines and CLI output; no
// definition renders differently.
func Format(err AsError) string {
	k := err.Kind()
	return fmt.Sprintf("[%s] %s (%d): %s", k.MessageCode(), err.Class(), k.Status(), err.Message())
}
