// Package chi provides thin adapters for using err-taxonomy with chi router.
//
// Chi uses standard net/http handlers, so err-taxonomy works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	errtaxonomy "github.com/blackwell-systems/err-taxonomy"
)

// Trace is a convenience wrapper around errtaxonomy.TraceMiddleware
// that returns a standard net/http middleware for chi.
//
// Chi can use errtaxonomy.TraceMiddleware directly; this exists for clarity.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.Trace)
func Trace(next http.Handler) http.Handler {
	return errtaxonomy.TraceMiddleware(next)
}
