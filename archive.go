// Package nskeyed maps structured Go types onto the flat key/value object
// model used by a keyed-archive engine.
//
// The engine itself — the component that walks an object graph, resolves
// surrogate identifiers, and reads or writes the binary plist byte stream —
// is an external collaborator. This package plugs into it through the
// Archive interface and supplies the per-class delegates the engine
// dispatches to when it meets an archived object.
//
// # Generic records
//
// Most record types need no hand-written delegate. An Archiver derives
// symmetric encode/decode behavior from a struct's declared fields:
//
//	type Session struct {
//	    NSdata  []byte
//	    Started nskeyed.Timestamp
//	}
//
//	arc, _ := nskeyed.Use[Session]()
//	err := arc.EncodeArchive(&session, archive)
//	obj, err := arc.DecodeArchive(archive)
//
// Field names translate to archive keys by the NS-prefix rule: a name
// beginning with "NS" becomes "NS." plus the remainder (NSdata ⇄ NS.data);
// every other name is used verbatim. An `archive:"key"` struct tag pins a
// field to a literal key, bypassing the rule.
//
// # Strict decoding
//
// Decoding fails when the raw record carries keys that map to no declared
// field, so schema drift between an archive producer and a Go type surfaces
// immediately instead of dropping data. A type opts out by implementing
// UnmappedIgnorer.
//
// # Bespoke values
//
// Values whose wire shape cannot be derived from fields have dedicated
// delegates: Timestamp (NSDate, epoch-shifted seconds), URL (NSURL),
// UUID (NSUUID, raw bytes), TestConfiguration (XCTestConfiguration),
// ActivityRecord (XCActivityRecord), and MutableData (NSMutableData).
// All built-ins are pre-registered in the class map; Register adds
// application classes.
package nskeyed

// ClassKey is the reserved discriminator key identifying which archived
// class a raw record decodes into. It never corresponds to a declared
// field and is excluded from completeness checks.
const ClassKey = "$class"

// Archive is the boundary to the external keyed-archive engine, scoped to
// one archived object. Encode and Decode operate on a single key; nested
// values are archived recursively by the engine, not by this package.
type Archive interface {
	// Encode writes value under key into the current object.
	Encode(key string, value any) error

	// Decode reads the value stored under key in the current object.
	Decode(key string) (any, error)

	// Object returns the raw key/value mapping of the current object,
	// including the ClassKey entry. Callers must treat it as read-only.
	Object() map[string]any
}

// RawWriter is an optional, narrower capability of an Archive: a direct
// write into the raw record mapping that bypasses the engine's per-key
// encode. The only delegate that needs it is UUID, whose wire form is
// fixed-width raw bytes rather than a further-encodable value. Asserted
// at use; engines that do not implement it fail with ErrRawUnsupported.
type RawWriter interface {
	// EncodeRaw stores data verbatim under key in the raw record mapping.
	EncodeRaw(key string, data []byte)
}

// UnmappedIgnorer marks a record type as tolerant of archive keys that map
// to no declared field. The flag is read once, when the type's Archiver is
// built, and never again; implement it on types that deliberately decode a
// subset of an externally-produced archive.
//
//	func (LaunchInfo) IgnoreUnmappedKeys() {}
type UnmappedIgnorer interface {
	IgnoreUnmappedKeys()
}
