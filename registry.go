package nskeyed

import (
	"sort"
	"sync"
)

// EncodeFunc writes one record into the archive boundary.
type EncodeFunc func(obj any, archive Archive) error

// DecodeFunc reads one record out of the archive boundary.
type DecodeFunc func(archive Archive) (any, error)

// ClassCodec is the delegate pair registered for one archived class name.
// A nil direction means the class does not support that operation.
type ClassCodec struct {
	Encode EncodeFunc
	Decode DecodeFunc
}

var (
	classes   map[string]ClassCodec
	classesMu sync.RWMutex
)

func init() {
	classes = builtinClasses()
}

// Register maps an archived class name to its delegate pair, replacing any
// existing entry. The archive engine dispatches on the value of the
// ClassKey entry in a raw record.
func Register(className string, codec ClassCodec) {
	classesMu.Lock()
	defer classesMu.Unlock()
	classes[className] = codec
}

// RegisterType registers the generic Archiver for T under className,
// covering both directions.
func RegisterType[T any](className string) error {
	arc, err := Use[T]()
	if err != nil {
		return err
	}

	Register(className, ClassCodec{
		Encode: func(obj any, archive Archive) error {
			switch v := obj.(type) {
			case *T:
				return arc.EncodeArchive(v, archive)
			case T:
				return arc.EncodeArchive(&v, archive)
			default:
				return newAdapterError(ErrFieldType, className, "")
			}
		},
		Decode: func(archive Archive) (any, error) {
			return arc.DecodeArchive(archive)
		},
	})
	return nil
}

// Lookup returns the delegate pair for a class name.
func Lookup(className string) (ClassCodec, bool) {
	classesMu.RLock()
	defer classesMu.RUnlock()
	codec, ok := classes[className]
	return codec, ok
}

// Classes returns the sorted names of all registered classes.
func Classes() []string {
	classesMu.RLock()
	defer classesMu.RUnlock()

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EncodeClass dispatches an encode through the class map.
func EncodeClass(className string, obj any, archive Archive) error {
	codec, ok := Lookup(className)
	if !ok {
		return newAdapterError(ErrNotRegistered, className, "")
	}
	if codec.Encode == nil {
		return newAdapterError(ErrEncodeUnsupported, className, "")
	}
	return codec.Encode(obj, archive)
}

// DecodeClass dispatches a decode through the class map.
func DecodeClass(className string, archive Archive) (any, error) {
	codec, ok := Lookup(className)
	if !ok {
		return nil, newAdapterError(ErrNotRegistered, className, "")
	}
	if codec.Decode == nil {
		return nil, newAdapterError(ErrDecodeUnsupported, className, "")
	}
	return codec.Decode(archive)
}

// Reset restores the class map to the built-in classes.
// This is primarily useful for test isolation.
func Reset() {
	classesMu.Lock()
	defer classesMu.Unlock()
	classes = builtinClasses()
}

// builtinClasses returns the default class map.
func builtinClasses() map[string]ClassCodec {
	data, err := NewArchiver[MutableData]()
	if err != nil {
		panic(err)
	}

	return map[string]ClassCodec{
		"NSDate": {
			Encode: encodeTimestamp,
			Decode: decodeTimestamp,
		},
		"NSURL": {
			Encode: encodeURL,
			Decode: decodeURL,
		},
		"NSUUID": {
			Encode: encodeUUID,
			Decode: decodeUUID,
		},
		"XCTestConfiguration": {
			Encode: encodeTestConfiguration,
		},
		"XCActivityRecord": {
			Decode: decodeActivityRecord,
		},
		"NSMutableData": {
			Encode: func(obj any, archive Archive) error {
				switch v := obj.(type) {
				case *MutableData:
					return data.EncodeArchive(v, archive)
				case MutableData:
					return data.EncodeArchive(&v, archive)
				default:
					return newAdapterError(ErrFieldType, "NSMutableData", "")
				}
			},
			Decode: func(archive Archive) (any, error) {
				return data.DecodeArchive(archive)
			},
		},
	}
}
