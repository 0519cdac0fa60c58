package nskeyed

import (
	"errors"
	"testing"
)

func TestUnmappedFieldsError_Is(t *testing.T) {
	err := error(&UnmappedFieldsError{TypeName: "Session", Fields: []string{"NSextra"}})

	if !errors.Is(err, ErrUnmappedFields) {
		t.Error("UnmappedFieldsError should unwrap to ErrUnmappedFields")
	}

	if errors.Is(err, ErrFieldType) {
		t.Error("UnmappedFieldsError should not match ErrFieldType")
	}
}

func TestUnmappedFieldsError_Message(t *testing.T) {
	err := &UnmappedFieldsError{TypeName: "Session", Fields: []string{"NSextra", "legacy"}}

	want := "unmapped fields: NSextra, legacy for class Session"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConstructionError_Is(t *testing.T) {
	err := newConstructionError(ErrMissingField, "XCTestConfiguration", "testBundleURL", "")

	if !errors.Is(err, ErrMissingField) {
		t.Error("ConstructionError should unwrap to ErrMissingField")
	}

	if errors.Is(err, ErrFieldType) {
		t.Error("ConstructionError should not match ErrFieldType")
	}
}

func TestConstructionError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing key",
			err:  newConstructionError(ErrMissingField, "XCTestConfiguration", "sessionIdentifier", ""),
			want: `XCTestConfiguration: missing field key "sessionIdentifier"`,
		},
		{
			name: "wrong type",
			err:  newConstructionError(ErrFieldType, "XCTestConfiguration", "testBundleURL", "nskeyed.URL"),
			want: `XCTestConfiguration: wrong field type key "testBundleURL" must hold nskeyed.URL`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdapterError_Is(t *testing.T) {
	err := newAdapterError(ErrRawUnsupported, "NSUUID", "NS.uuidbytes")

	if !errors.Is(err, ErrRawUnsupported) {
		t.Error("AdapterError should unwrap to ErrRawUnsupported")
	}

	if errors.Is(err, ErrBadLength) {
		t.Error("AdapterError should not match ErrBadLength")
	}
}

func TestAdapterError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with key",
			err:  newAdapterError(ErrRawUnsupported, "NSUUID", "NS.uuidbytes"),
			want: "NSUUID: raw write unsupported (key NS.uuidbytes)",
		},
		{
			name: "without key",
			err:  newAdapterError(ErrDecodeUnsupported, "XCTestConfiguration", ""),
			want: "XCTestConfiguration: decode unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
