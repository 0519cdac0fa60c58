package nskeyed

import "fmt"

// FillType is the archived "Fill" placeholder: a value that exists but
// carries no further structure. Zero-sized; all values compare equal. It
// never appears in the key/value mapping of a record.
type FillType struct{}

// Fill is the canonical FillType value.
var Fill = FillType{}

func (FillType) String() string {
	return "Fill"
}

// UnicodeString tags a decoded string as the alternate textual encoding
// variant of the wire format, distinguishing it from the host's native
// string type during decode. It never appears in the key/value mapping of
// a record.
type UnicodeString string

func (s UnicodeString) String() string {
	return string(s)
}

// UID is a surrogate identifier: the integer reference the archive graph
// uses to point at another object without embedding it inline. Resolution
// happens in the external engine; this package only carries the value
// through.
type UID uint64

func (u UID) String() string {
	return fmt.Sprintf("uid(%d)", uint64(u))
}
