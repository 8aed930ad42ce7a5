// Package errtaxonomy provides a declarative error taxonomy for Go services.
// A small table of kinds (category name, message code, status, description)
// backs many named error definitions; every instance exposes the same
// capability surface and renders through one canonical format, so errors look
// identical no matter where they were raised.
package errtaxonomy

import (
	"errors"
	"fmt"
	"log/slog"
)

// AsError is the capability contract satisfied by every taxonomy error,
// including the generic wrapper. Generic handling code should depend on this
// interface rather than on concrete definitions.
type AsError interface {
	error
	Kind() Kind
	Class() string
	Message() string
	// Details returns a defensive copy; nil when no details are attached.
	Details() *Details
}

// Type is one row of the error table: a named error definition bound to a
// registered kind. It acts as a factory for instances; the definition itself
// carries no mutable state.
type Type struct {
	name string
	kind Kind
}

// ErrorSpec is one row of the declarative error table passed to DefineErrors.
type ErrorSpec struct {
	Name string
	Kind Kind
}

// Define declares a named error bound to a previously registered kind.
//
// The kind must come from NewKind or RegisterKinds; a zero or unregistered
// kind panics. Like kind registration this is a declaration-time check, meant
// to fail at package initialization rather than in a request path.
func Define(name string, kind Kind) *Type {
	if name == "" {
		panic("errtaxonomy: error name must not be empty")
	}
	registered, ok := KindByName(kind.Name())
	if !ok || registered != kind {
		panic(fmt.Sprintf("errtaxonomy: error %q references unknown kind %q", name, kind.Name()))
	}
	return &Type{name: name, kind: kind}
}

// DefineErrors declares a whole error table at once and returns the
// definitions in table order. Several entries may share one kind: kinds model
// categories, names model failure sites.
func DefineErrors(specs ...ErrorSpec) []*Type {
	out := make([]*Type, 0, len(specs))
	for _, spec := range specs {
		out = append(out, Define(spec.Name, spec.Kind))
	}
	return out
}

// Name returns the declared error name.
func (t *Type) Name() string { return t.name }

// Kind returns the kind the definition is bound to.
func (t *Type) Kind() Kind { return t.kind }

// Class returns the class string shared by every instance of the definition:
// "{side}::{kind name}::{error name}".
func (t *Type) Class() string {
	return fmt.Sprintf("%s::%s::%s", t.kind.side, t.kind.name, t.name)
}

// New creates an instance with the kind's description as message and no
// details. The class string is fixed here and never changes afterwards.
func (t *Type) New() *Error {
	return &Error{
		kind:    t.kind,
		name:    t.name,
		class:   t.Class(),
		message: t.kind.description,
	}
}

// Is reports whether err is (or wraps) an instance of this definition.
func (t *Type) Is(err error) bool {
	var e *Error
	if !errors.As(err, &e) || e == nil {
		return false
	}
	return e.name == t.name && e.kind == t.kind
}

// Error is a single taxonomy error instance. All named definitions and the
// generic wrapper share this one concrete type; what varies is the kind and
// name stamped on it at construction.
//
// Builders return an updated copy, so an instance already handed to another
// owner is never mutated underneath it.
type Error struct {
	kind    Kind
	name    string
	class   string
	message string
	details *Details
	cause   error
}

var (
	_ AsError        = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
)

// Kind returns the kind the instance is bound to.
func (e *Error) Kind() Kind { return e.kind }

// Class returns "{side}::{kind name}::{error name}". It is invariant under
// SetMessage, SetDetails and every other builder.
func (e *Error) Class() string { return e.class }

// Message returns the current message.
func (e *Error) Message() string { return e.message }

// Details returns a copy of the attached details, or nil when absent.
func (e *Error) Details() *Details { return e.details.Clone() }

// Error renders the instance in the canonical taxonomy format.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return Format(e)
}

// String returns the same canonical rendering as Error.
func (e *Error) String() string { return e.Error() }

// Unwrap returns the wrapped cause, if any, for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// SetMessage replaces the message and returns the updated copy.
func (e *Error) SetMessage(message string) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.message = message
	return &cp
}

// SetMessagef replaces the message with a formatted one.
func (e *Error) SetMessagef(format string, args ...any) *Error {
	return e.SetMessage(fmt.Sprintf(format, args...))
}

// SetDetails replaces the details wholesale (no merging with prior entries)
// and returns the updated copy. The map is cloned on the way in.
func (e *Error) SetDetails(details *Details) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.details = details.Clone()
	return &cp
}

// WithDetail merges a single key/value into the details, creating the map on
// first use, and returns the updated copy.
func (e *Error) WithDetail(key string, value any) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	if cp.details == nil {
		cp.details = NewDetails()
	} else {
		cp.details = cp.details.Clone()
	}
	cp.details.Set(key, value)
	return &cp
}

// WithCause attaches an underlying cause exposed via Unwrap and returns the
// updated copy.
func (e *Error) WithCause(cause error) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.cause = cause
	return &cp
}

// LogValue renders the instance as a structured slog group.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{
		slog.String("code", e.kind.messageCode),
		slog.String("class", e.class),
		slog.Int("status", e.kind.status),
		slog.String("message", e.message),
	}
	if e.details.Len() > 0 {
		attrs = append(attrs, slog.Any("details", e.details))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// MarshalJSON encodes the instance as the wire envelope used by Write.
func (e *Error) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(e, "")
}
