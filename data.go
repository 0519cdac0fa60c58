package nskeyed

import "fmt"

// MutableData is an archived NSMutableData record. Both directions are
// derived by the generic Archiver: the NSdata field name translates to the
// NS.data key, and decoded bytes are copied before they are stored, so the
// result does not alias the boundary's buffer.
type MutableData struct {
	NSdata []byte
}

func (d MutableData) String() string {
	if d.NSdata == nil {
		return "NSMutableData(null bytes)"
	}
	return fmt.Sprintf("NSMutableData(%d bytes)", len(d.NSdata))
}
