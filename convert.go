package errtaxonomy

import (
	json "github.com/goccy/go-json"
)

// Serializer is the external collaborator used to turn detail values and
// origin snapshots into structured data. Any codec with Marshal/Unmarshal
// symmetry satisfies it.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// DefaultSerializer is used by conversion and the HTTP envelope. Swap it at
// startup if a different codec is needed; like kind registration, this is
// initialization-time configuration, not per-request state.
var DefaultSerializer Serializer = jsonSerializer{}

type jsonSerializer struct{}

func (jsonSerializer) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonSerializer) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// originSnapshot is the detail-stripped view of a source error stored under
// the "origin" key during conversion. Details are excluded on purpose:
// repeated conversions must not nest details inside details without bound.
type originSnapshot struct {
	Kind        string `json:"kind"`
	MessageCode string `json:"message_code"`
	Status      int    `json:"status"`
	Class       string `json:"class"`
	Message     string `json:"message"`
}

// Convert re-wraps src as an instance of this definition.
//
// The source's details (if any) are carried over, with a serialized,
// detail-stripped snapshot of the source added under "origin" — overwriting
// anything the caller had stored there. The new instance keeps the target
// kind's default description as its message; the source message survives only
// inside the origin snapshot.
//
// If the snapshot fails to serialize, Convert returns a SerializationError
// instance and no target: details are attached all-or-nothing.
func (t *Type) Convert(src AsError) (*Error, error) {
	k := src.Kind()
	snap := originSnapshot{
		Kind:        k.Name(),
		MessageCode: k.MessageCode(),
		Status:      k.Status(),
		Class:       src.Class(),
		Message:     src.Message(),
	}

	data, err := DefaultSerializer.Marshal(snap)
	if err != nil {
		return nil, SerializationError.New().
			SetMessagef("serializing origin snapshot of %s: %v", src.Class(), err).
			WithCause(err)
	}
	var origin any
	if err := DefaultSerializer.Unmarshal(data, &origin); err != nil {
		return nil, SerializationError.New().
			SetMessagef("decoding origin snapshot of %s: %v", src.Class(), err).
			WithCause(err)
	}

	working := src.Details()
	if working == nil {
		working = NewDetails()
	}
	working.Set(OriginKey, origin)

	e := t.New()
	e.details = working
	return e, nil
}
