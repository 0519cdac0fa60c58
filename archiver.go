package nskeyed

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the key-override tag with sentinel
	sentinel.Tag("archive")
}

// fieldPlan describes how one declared field maps onto the archive.
type fieldPlan struct {
	name  string       // declared field name
	key   string       // archive key on the wire
	index []int        // reflect.Value.FieldByIndex access path
	typ   reflect.Type // declared field type
}

// Archiver derives symmetric encode/decode behavior for record type T from
// its declared fields, without per-type code. Field names translate to
// archive keys by the NS-prefix rule (ArchiveKey), or verbatim when pinned
// with an `archive:"key"` tag.
//
// Archivers are immutable after construction and safe for concurrent use.
// Whether T tolerates unmapped keys is fixed here, when the plan is built,
// by checking for the UnmappedIgnorer interface.
type Archiver[T any] struct {
	typeName       string
	fields         []fieldPlan         // declaration order
	keys           map[string]struct{} // expected archive keys
	ignoreUnmapped bool
}

// NewArchiver builds an Archiver for type T by scanning its declared
// fields. It fails if two fields translate to the same archive key.
//
// Most callers want Use, which caches the result per type.
func NewArchiver[T any]() (*Archiver[T], error) {
	spec := sentinel.Scan[T]()

	a := &Archiver[T]{
		typeName: spec.TypeName,
		keys:     make(map[string]struct{}, len(spec.Fields)),
	}

	var zero T
	if _, ok := any(&zero).(UnmappedIgnorer); ok {
		a.ignoreUnmapped = true
	}

	for _, field := range spec.Fields {
		key := ArchiveKey(field.Name)
		if tag, ok := field.Tags["archive"]; ok && tag != "" {
			key = tag
		}
		if _, dup := a.keys[key]; dup {
			return nil, newAdapterError(ErrKeyCollision, spec.TypeName, key)
		}
		a.keys[key] = struct{}{}
		a.fields = append(a.fields, fieldPlan{
			name:  field.Name,
			key:   key,
			index: field.Index,
			typ:   field.ReflectType,
		})
	}

	emitArchiverCreated(context.Background(), a.typeName, len(a.fields))
	return a, nil
}

// EncodeArchive writes every declared field of obj into archive, in
// declaration order, under the field's translated key. Errors from the
// archive boundary pass through unmodified.
func (a *Archiver[T]) EncodeArchive(obj *T, archive Archive) error {
	ctx := context.Background()
	start := time.Now()
	emitEncodeStart(ctx, a.typeName)

	var retErr error
	defer func() {
		emitEncodeComplete(ctx, a.typeName, len(a.fields), time.Since(start), retErr)
	}()

	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range a.fields {
		if err := archive.Encode(plan.key, rv.FieldByIndex(plan.index).Interface()); err != nil {
			retErr = err
			return retErr
		}
	}
	return nil
}

// DecodeArchive reads one record of type T out of archive. The raw record's
// keys are verified against the declared fields first (unless T implements
// UnmappedIgnorer); the record itself is constructed in one step only after
// every field has resolved. Mutable byte slices handed back by the boundary
// are copied before they are stored.
func (a *Archiver[T]) DecodeArchive(archive Archive) (*T, error) {
	ctx := context.Background()
	start := time.Now()
	emitDecodeStart(ctx, a.typeName)

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, a.typeName, len(a.fields), time.Since(start), retErr)
	}()

	if err := a.verify(archive.Object()); err != nil {
		retErr = err
		return nil, retErr
	}

	values := make([]any, len(a.fields))
	for i, plan := range a.fields {
		value, err := archive.Decode(plan.key)
		if err != nil {
			retErr = err
			return nil, retErr
		}
		if b, ok := value.([]byte); ok {
			value = append([]byte(nil), b...)
		}
		values[i] = value
	}

	obj := new(T)
	rv := reflect.ValueOf(obj).Elem()
	for i, plan := range a.fields {
		if err := setField(rv.FieldByIndex(plan.index), values[i], a.typeName, plan.key); err != nil {
			retErr = err
			return nil, retErr
		}
	}
	return obj, nil
}

// verify checks that every raw key (minus the discriminator) maps to a
// declared field, unless T opted out.
func (a *Archiver[T]) verify(raw map[string]any) error {
	if a.ignoreUnmapped {
		return nil
	}

	var unmapped []string
	for key := range raw {
		if key == ClassKey {
			continue
		}
		if _, ok := a.keys[key]; ok {
			continue
		}
		unmapped = append(unmapped, FieldName(key))
	}
	if len(unmapped) == 0 {
		return nil
	}

	sort.Strings(unmapped)
	return &UnmappedFieldsError{TypeName: a.typeName, Fields: unmapped}
}

// setField stores a decoded value into a struct field, converting defined
// types (e.g. float64 into Timestamp) where the conversion is lossless by
// declaration. A nil value leaves the field at its zero value.
func setField(field reflect.Value, value any, typeName, key string) error {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case rv.Type().ConvertibleTo(field.Type()):
		field.Set(rv.Convert(field.Type()))
	default:
		return newAdapterError(ErrFieldType, typeName, key)
	}
	return nil
}

var (
	archivers   = make(map[reflect.Type]any)
	archiversMu sync.RWMutex
)

// Use returns a cached Archiver for type T, building one on first use.
func Use[T any]() (*Archiver[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	archiversMu.RLock()
	if cached, ok := archivers[typ]; ok {
		archiversMu.RUnlock()
		return cached.(*Archiver[T]), nil
	}
	archiversMu.RUnlock()

	// Slow path: build and cache with write-lock
	archiversMu.Lock()
	defer archiversMu.Unlock()

	// Double-check pattern
	if cached, ok := archivers[typ]; ok {
		return cached.(*Archiver[T]), nil
	}

	a, err := NewArchiver[T]()
	if err != nil {
		return nil, err
	}

	archivers[typ] = a
	return a, nil
}
