// Package archivetest provides an in-memory archive boundary for testing
// nskeyed delegates without a real archive engine.
package archivetest

import (
	"github.com/zoobzio/nskeyed"
)

// Archive is an in-memory implementation of the nskeyed archive boundary,
// scoped to a single object. Encode stores values verbatim in the raw
// mapping; Decode reads them back, returning nil for absent keys the way
// the real engine does. It also implements the RawWriter capability.
//
// FailKey, when set, makes Encode and Decode return Err for that key, for
// exercising boundary error propagation.
type Archive struct {
	Objects map[string]any

	FailKey string
	Err     error
}

var (
	_ nskeyed.Archive   = (*Archive)(nil)
	_ nskeyed.RawWriter = (*Archive)(nil)
)

// New returns an empty Archive tagged with the given class name. An empty
// class name leaves the discriminator key unset.
func New(className string) *Archive {
	a := &Archive{Objects: make(map[string]any)}
	if className != "" {
		a.Objects[nskeyed.ClassKey] = className
	}
	return a
}

// FromObject wraps an existing raw record mapping.
func FromObject(obj map[string]any) *Archive {
	return &Archive{Objects: obj}
}

// Encode stores value under key.
func (a *Archive) Encode(key string, value any) error {
	if a.FailKey != "" && key == a.FailKey {
		return a.Err
	}
	a.Objects[key] = value
	return nil
}

// Decode returns the value stored under key, or nil when absent.
func (a *Archive) Decode(key string) (any, error) {
	if a.FailKey != "" && key == a.FailKey {
		return nil, a.Err
	}
	return a.Objects[key], nil
}

// Object returns the raw record mapping.
func (a *Archive) Object() map[string]any {
	return a.Objects
}

// EncodeRaw stores data verbatim under key, implementing RawWriter.
func (a *Archive) EncodeRaw(key string, data []byte) {
	a.Objects[key] = data
}

// norawArchive hides the RawWriter capability of an Archive.
type norawArchive struct {
	a *Archive
}

func (n norawArchive) Encode(key string, value any) error { return n.a.Encode(key, value) }
func (n norawArchive) Decode(key string) (any, error)     { return n.a.Decode(key) }
func (n norawArchive) Object() map[string]any             { return n.a.Object() }

// WithoutRaw returns a view of a that does not implement RawWriter.
func WithoutRaw(a *Archive) nskeyed.Archive {
	return norawArchive{a}
}
