package errtaxonomy

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Details is the structured diagnostic payload attached to an error.
// Keys are unique and iteration follows insertion order, so serialized
// output is deterministic.
//
// The key "origin" is reserved: conversion stores the snapshot of the
// source error there and overwrites any prior value.
type Details struct {
	keys   []string
	values map[string]any
}

// OriginKey is the reserved details key holding a converted error's source.
const OriginKey = "origin"

// NewDetails returns an empty detail map.
func NewDetails() *Details {
	return &Details{values: map[string]any{}}
}

// Set stores value under key, keeping the key's original position if it
// already exists. It returns the receiver for chaining.
func (d *Details) Set(key string, value any) *Details {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value stored under key.
func (d *Details) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (d *Details) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries. A nil map has length zero.
func (d *Details) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Merge inserts every entry of other, overwriting existing keys.
// It returns the receiver for chaining.
func (d *Details) Merge(other *Details) *Details {
	if other == nil {
		return d
	}
	for _, k := range other.keys {
		d.Set(k, other.values[k])
	}
	return d
}

// Clone returns an independent copy. Cloning nil yields nil.
func (d *Details) Clone() *Details {
	if d == nil {
		return nil
	}
	out := NewDetails()
	for _, k := range d.keys {
		out.Set(k, d.values[k])
	}
	return out
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (d *Details) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, fmt.Errorf("details key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving its key order.
func (d *Details) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("details: expected JSON object, got %v", tok)
	}

	d.keys = nil
	d.values = map[string]any{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("details: expected string key, got %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		d.Set(key, value)
	}
	_, err = dec.Token() // closing brace
	return err
}
