package errtaxonomy

import (
	"net/http"
)

const (
	// HeaderTraceID is the standard header name for trace/request IDs.
	HeaderTraceID = "X-Request-Id"
)

// envelope is the wire shape of a taxonomy error. Downstream consumers read
// status for protocol mapping and code for machine dispatch; message and
// details carry the human and diagnostic content.
type envelope struct {
	Code    string   `json:"code"`
	Class   string   `json:"class"`
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Details *Details `json:"details,omitempty"`
	TraceID string   `json:"trace_id,omitempty"`
}

func marshalEnvelope(e *Error, traceID string) ([]byte, error) {
	return DefaultSerializer.Marshal(envelope{
		Code:    e.kind.messageCode,
		Class:   e.class,
		Status:  e.kind.status,
		Message: e.message,
		Details: e.details,
		TraceID: traceID,
	})
}

// Write writes a consistent JSON error envelope to the response, using the
// error kind's status as the HTTP status. Foreign errors are adapted via
// From; a nil error writes 204 No Content.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	e := From(err)
	if e == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	traceID := TraceIDFromRequest(r)
	if traceID != "" {
		w.Header().Set(HeaderTraceID, traceID)
	}

	status := e.kind.status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	body, merr := marshalEnvelope(e, traceID)
	if merr != nil {
		// Serialization of a detail value failed; fall back to the canonical
		// text rendering rather than sending a broken body.
		http.Error(w, Format(e), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
