package nskeyed

import "fmt"

// Archive keys for the two components of an NSURL record.
const (
	urlBaseKey     = "NS.base"
	urlRelativeKey = "NS.relative"
)

// URL is an archived NSURL: an ordered (base, relative) pair. Either
// component is itself an archivable value, commonly a string or another
// URL. Equality is structural over both components.
type URL struct {
	Base     any
	Relative any
}

func (u URL) String() string {
	return fmt.Sprintf("NSURL(%v, %v)", u.Base, u.Relative)
}

// encodeURL is the NSURL encode delegate.
func encodeURL(obj any, archive Archive) error {
	var u URL
	switch v := obj.(type) {
	case URL:
		u = v
	case *URL:
		u = *v
	default:
		return newAdapterError(ErrFieldType, "NSURL", "")
	}
	if err := archive.Encode(urlBaseKey, u.Base); err != nil {
		return err
	}
	return archive.Encode(urlRelativeKey, u.Relative)
}

// decodeURL is the NSURL decode delegate.
//
// Decode deliberately does not reconstruct a URL value: it returns the
// loosely-typed map the original wire tooling expects, tagged with the
// NSURL discriminator and carrying the same two fields. Archives already
// in circulation round-trip through consumers of that shape, so the
// asymmetry with encodeURL is preserved for compatibility.
func decodeURL(archive Archive) (any, error) {
	base, err := archive.Decode(urlBaseKey)
	if err != nil {
		return nil, err
	}
	relative, err := archive.Decode(urlRelativeKey)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		ClassKey:   "NSURL",
		"base":     base,
		"relative": relative,
	}, nil
}
