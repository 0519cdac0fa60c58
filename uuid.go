package nskeyed

import "github.com/google/uuid"

// uuidBytesKey is the fixed key NSUUID stores its raw bytes under.
const uuidBytesKey = "NS.uuidbytes"

// UUID is an archived NSUUID: a 128-bit unique identifier whose wire form
// is exactly 16 raw bytes under NS.uuidbytes, written directly into the raw
// record mapping rather than through the per-field encode path.
type UUID struct {
	uuid.UUID
}

// NewUUID returns a random UUID.
func NewUUID() UUID {
	return UUID{uuid.New()}
}

// UUIDFromBytes builds a UUID from a 16-byte slice.
func UUIDFromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return UUID{}, newAdapterError(ErrBadLength, "NSUUID", uuidBytesKey)
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, err
	}
	return UUID{id}, nil
}

// encodeUUID is the NSUUID encode delegate. It requires the RawWriter
// capability on the archive boundary: the identifier's bytes are not a
// further-encodable value.
func encodeUUID(obj any, archive Archive) error {
	var u UUID
	switch v := obj.(type) {
	case UUID:
		u = v
	case *UUID:
		u = *v
	case uuid.UUID:
		u = UUID{v}
	default:
		return newAdapterError(ErrFieldType, "NSUUID", uuidBytesKey)
	}

	raw, ok := archive.(RawWriter)
	if !ok {
		return newAdapterError(ErrRawUnsupported, "NSUUID", uuidBytesKey)
	}
	raw.EncodeRaw(uuidBytesKey, append([]byte(nil), u.UUID[:]...))
	return nil
}

// decodeUUID is the NSUUID decode delegate.
func decodeUUID(archive Archive) (any, error) {
	value, err := archive.Decode(uuidBytesKey)
	if err != nil {
		return nil, err
	}
	b, ok := value.([]byte)
	if !ok {
		return nil, newAdapterError(ErrFieldType, "NSUUID", uuidBytesKey)
	}
	return UUIDFromBytes(append([]byte(nil), b...))
}
