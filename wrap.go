package errtaxonomy

import (
	"context"
	"errors"
	"net"
)

// generic backs the catch-all wrapper: a definition named "Error" under the
// Unknown kind, so wrapped foreign errors satisfy AsError like everything
// else and can be fed straight into Convert.
var generic = Define("Error", UnknownError)

// Wrap adapts a foreign error into the taxonomy. The wrapper takes the
// foreign error's text as its message and keeps the original reachable via
// errors.Is / errors.As.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	return generic.New().SetMessage(err.Error()).WithCause(err)
}

// From maps arbitrary errors into a taxonomy instance.
//
// Native instances pass through unchanged; context and network timeout
// conditions land on their dedicated definitions; anything else becomes a
// generic wrapper.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout.New().WithCause(err)
	}
	if errors.Is(err, context.Canceled) {
		return Canceled.New().WithCause(err)
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Timeout.New().WithCause(err)
	}

	return Wrap(err)
}
