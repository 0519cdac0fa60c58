package nskeyed_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/nskeyed"
	"github.com/zoobzio/nskeyed/archivetest"
)

// Session is a strict record type: undeclared archive keys fail its decode.
type Session struct {
	NSdata  []byte
	Title   string
	Count   int
	Started nskeyed.Timestamp
}

// LaunchInfo only cares about a subset of an externally-produced archive.
type LaunchInfo struct {
	Title string
}

func (LaunchInfo) IgnoreUnmappedKeys() {}

// PinnedRecord pins an NS-prefixed field to a literal key via tag override.
type PinnedRecord struct {
	NSliteral string `archive:"NSliteral"`
	Title     string
}

// CollidingRecord declares two fields that translate to the same key.
type CollidingRecord struct {
	NSdata []byte
	Data   string `archive:"NS.data"`
}

func TestArchiverRoundTrip(t *testing.T) {
	arc, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	original := Session{
		NSdata:  []byte{0x01, 0x02, 0x03},
		Title:   "boot",
		Count:   7,
		Started: nskeyed.Timestamp(1650000000.5),
	}

	archive := archivetest.New("Session")
	if err := arc.EncodeArchive(&original, archive); err != nil {
		t.Fatalf("EncodeArchive() error: %v", err)
	}

	if _, ok := archive.Objects["NS.data"]; !ok {
		t.Error("NSdata field should encode under key NS.data")
	}
	if _, ok := archive.Objects["NSdata"]; ok {
		t.Error("NSdata field should not encode under its untranslated name")
	}

	decoded, err := arc.DecodeArchive(archive)
	if err != nil {
		t.Fatalf("DecodeArchive() error: %v", err)
	}

	if !bytes.Equal(decoded.NSdata, original.NSdata) {
		t.Errorf("NSdata = %v, want %v", decoded.NSdata, original.NSdata)
	}
	if decoded.Title != original.Title || decoded.Count != original.Count {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
	if decoded.Started != original.Started {
		t.Errorf("Started = %v, want %v", decoded.Started, original.Started)
	}
}

func TestArchiverDecode_UnmappedKeyFails(t *testing.T) {
	arc, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	archive := archivetest.FromObject(map[string]any{
		nskeyed.ClassKey: "Session",
		"Title":          "boot",
		"NS.extra":       1,
	})

	_, err = arc.DecodeArchive(archive)
	if err == nil {
		t.Fatal("DecodeArchive() should fail on undeclared key")
	}
	if !errors.Is(err, nskeyed.ErrUnmappedFields) {
		t.Errorf("error should match ErrUnmappedFields, got %v", err)
	}

	var unmapped *nskeyed.UnmappedFieldsError
	if !errors.As(err, &unmapped) {
		t.Fatalf("error should be *UnmappedFieldsError, got %T", err)
	}
	if len(unmapped.Fields) != 1 || unmapped.Fields[0] != "NSextra" {
		t.Errorf("Fields = %v, want [NSextra]", unmapped.Fields)
	}
	if unmapped.TypeName != "Session" {
		t.Errorf("TypeName = %q, want Session", unmapped.TypeName)
	}
	if !strings.Contains(err.Error(), "NSextra") {
		t.Errorf("error message should name the offending key, got %q", err)
	}
}

func TestArchiverDecode_OptOutIgnoresUnmapped(t *testing.T) {
	arc, err := nskeyed.Use[LaunchInfo]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	archive := archivetest.FromObject(map[string]any{
		nskeyed.ClassKey: "LaunchInfo",
		"Title":          "boot",
		"NS.extra":       1,
		"legacy":         true,
	})

	decoded, err := arc.DecodeArchive(archive)
	if err != nil {
		t.Fatalf("DecodeArchive() error: %v", err)
	}
	if decoded.Title != "boot" {
		t.Errorf("Title = %q, want boot", decoded.Title)
	}
}

func TestArchiverDecode_CopiesBytes(t *testing.T) {
	arc, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	buf := []byte("mutable")
	archive := archivetest.FromObject(map[string]any{
		nskeyed.ClassKey: "Session",
		"NS.data":        buf,
		"Title":          "boot",
		"Count":          0,
		"Started":        0.0,
	})

	decoded, err := arc.DecodeArchive(archive)
	if err != nil {
		t.Fatalf("DecodeArchive() error: %v", err)
	}

	buf[0] = 'X'
	if decoded.NSdata[0] == 'X' {
		t.Error("decoded bytes should not alias the boundary's buffer")
	}
}

func TestArchiverTagOverride(t *testing.T) {
	arc, err := nskeyed.Use[PinnedRecord]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	original := PinnedRecord{NSliteral: "kept", Title: "boot"}
	archive := archivetest.New("PinnedRecord")
	if err := arc.EncodeArchive(&original, archive); err != nil {
		t.Fatalf("EncodeArchive() error: %v", err)
	}

	if got, ok := archive.Objects["NSliteral"]; !ok || got != "kept" {
		t.Errorf("tagged field should encode under its literal key, got %v", archive.Objects)
	}
	if _, ok := archive.Objects["NS.literal"]; ok {
		t.Error("tagged field should not dot-expand")
	}

	decoded, err := arc.DecodeArchive(archive)
	if err != nil {
		t.Fatalf("DecodeArchive() error: %v", err)
	}
	if *decoded != original {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}

	// The dot-expanded key is no longer expected once the field is pinned.
	drifted := archivetest.FromObject(map[string]any{
		nskeyed.ClassKey: "PinnedRecord",
		"NS.literal":     "kept",
		"Title":          "boot",
	})
	if _, err := arc.DecodeArchive(drifted); !errors.Is(err, nskeyed.ErrUnmappedFields) {
		t.Errorf("dot-expanded key should be unmapped after override, got %v", err)
	}
}

func TestArchiverKeyCollision(t *testing.T) {
	_, err := nskeyed.NewArchiver[CollidingRecord]()
	if !errors.Is(err, nskeyed.ErrKeyCollision) {
		t.Errorf("NewArchiver() should fail with ErrKeyCollision, got %v", err)
	}
}

func TestArchiverBoundaryErrorPassesThrough(t *testing.T) {
	arc, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	boundaryErr := errors.New("surrogate unresolved")

	encodeArchive := archivetest.New("Session")
	encodeArchive.FailKey = "Title"
	encodeArchive.Err = boundaryErr
	if err := arc.EncodeArchive(&Session{}, encodeArchive); !errors.Is(err, boundaryErr) {
		t.Errorf("EncodeArchive() should surface the boundary error unmodified, got %v", err)
	}

	decodeArchive := archivetest.FromObject(map[string]any{
		nskeyed.ClassKey: "Session",
		"NS.data":        []byte{},
		"Title":          "boot",
		"Count":          0,
		"Started":        0.0,
	})
	decodeArchive.FailKey = "Count"
	decodeArchive.Err = boundaryErr
	if _, err := arc.DecodeArchive(decodeArchive); !errors.Is(err, boundaryErr) {
		t.Errorf("DecodeArchive() should surface the boundary error unmodified, got %v", err)
	}
}

func TestArchiverDecode_WrongValueType(t *testing.T) {
	arc, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	archive := archivetest.FromObject(map[string]any{
		nskeyed.ClassKey: "Session",
		"NS.data":        []byte{},
		"Title":          "boot",
		"Count":          []string{"not", "an", "int"},
		"Started":        0.0,
	})

	if _, err := arc.DecodeArchive(archive); !errors.Is(err, nskeyed.ErrFieldType) {
		t.Errorf("DecodeArchive() should fail with ErrFieldType, got %v", err)
	}
}

func TestArchiverDecode_AbsentKeyLeavesZero(t *testing.T) {
	arc, err := nskeyed.Use[LaunchInfo]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	decoded, err := arc.DecodeArchive(archivetest.New("LaunchInfo"))
	if err != nil {
		t.Fatalf("DecodeArchive() error: %v", err)
	}
	if decoded.Title != "" {
		t.Errorf("Title = %q, want zero value", decoded.Title)
	}
}

func TestUse_Caching(t *testing.T) {
	a1, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	a2, err := nskeyed.Use[Session]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if a1 != a2 {
		t.Error("Use() should return the cached archiver")
	}
}
