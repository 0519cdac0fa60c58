package nskeyed

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnmappedFields indicates a raw record contained keys with no
	// corresponding declared field on the target type.
	ErrUnmappedFields = errors.New("unmapped fields")

	// ErrMissingField indicates a mandatory construction field was absent.
	ErrMissingField = errors.New("missing field")

	// ErrFieldType indicates a value had the wrong type for its field.
	ErrFieldType = errors.New("wrong field type")

	// ErrKeyCollision indicates two declared fields translate to the same
	// archive key.
	ErrKeyCollision = errors.New("archive key collision")

	// ErrRawUnsupported indicates the archive boundary does not implement
	// the RawWriter capability.
	ErrRawUnsupported = errors.New("raw write unsupported")

	// ErrBadLength indicates a raw payload had the wrong byte length.
	ErrBadLength = errors.New("bad payload length")

	// ErrEncodeUnsupported indicates the class defines no encode direction.
	ErrEncodeUnsupported = errors.New("encode unsupported")

	// ErrDecodeUnsupported indicates the class defines no decode direction.
	ErrDecodeUnsupported = errors.New("decode unsupported")

	// ErrNotRegistered indicates a class name has no registered delegate.
	ErrNotRegistered = errors.New("class not registered")
)

// UnmappedFieldsError reports raw record keys that map to no declared field
// of the target type. Fields holds the inverse-translated names, sorted.
// Always fatal to the decode of that record.
type UnmappedFieldsError struct {
	TypeName string
	Fields   []string
}

func (e *UnmappedFieldsError) Error() string {
	return fmt.Sprintf("%s: %s for class %s",
		ErrUnmappedFields.Error(), strings.Join(e.Fields, ", "), e.TypeName)
}

func (e *UnmappedFieldsError) Unwrap() error {
	return ErrUnmappedFields
}

// ConstructionError reports a violated construction precondition: a
// mandatory field missing or carrying the wrong value type.
type ConstructionError struct {
	Err      error  // Underlying sentinel error (ErrMissingField, ErrFieldType)
	TypeName string // Type under construction
	Key      string // Offending key
	Want     string // Expected value type, when known
}

func (e *ConstructionError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("%s: %s key %q must hold %s", e.TypeName, e.Err.Error(), e.Key, e.Want)
	}
	return fmt.Sprintf("%s: %s key %q", e.TypeName, e.Err.Error(), e.Key)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// AdapterError reports a failure inside a delegate, with the class and key
// involved. Boundary errors are not wrapped in AdapterError; they pass
// through unmodified.
type AdapterError struct {
	Err       error  // Underlying sentinel error
	ClassName string // Archived class name
	Key       string // Archive key involved, when relevant
}

func (e *AdapterError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s (key %s)", e.ClassName, e.Err.Error(), e.Key)
	}
	return fmt.Sprintf("%s: %s", e.ClassName, e.Err.Error())
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// newConstructionError creates a ConstructionError for precondition failures.
func newConstructionError(sentinel error, typeName, key, want string) error {
	return &ConstructionError{
		Err:      sentinel,
		TypeName: typeName,
		Key:      key,
		Want:     want,
	}
}

// newAdapterError creates an AdapterError for delegate failures.
func newAdapterError(sentinel error, className, key string) error {
	return &AdapterError{
		Err:       sentinel,
		ClassName: className,
		Key:       key,
	}
}
