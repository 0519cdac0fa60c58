package nskeyed

import "time"

// timeKey is the single archive key an NSDate record stores its value under.
const timeKey = "NS.time"

// EpochDelta is the fixed shift, in seconds, between the Unix epoch and the
// alternate epoch (2001-01-01T00:00:00 UTC) the archived format counts from.
const EpochDelta = 978307200.0

// Timestamp is a real number of seconds since the Unix epoch
// (1970-01-01T00:00:00 UTC). Its archived representation under NS.time is
// relative to the alternate epoch; conversion is a pure additive shift,
// lossless up to floating-point precision.
type Timestamp float64

// Time returns the timestamp as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	sec := int64(t)
	nsec := int64((float64(t) - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

// encodeTimestamp is the NSDate encode delegate.
func encodeTimestamp(obj any, archive Archive) error {
	var t Timestamp
	switch v := obj.(type) {
	case Timestamp:
		t = v
	case float64:
		t = Timestamp(v)
	default:
		return newAdapterError(ErrFieldType, "NSDate", timeKey)
	}
	return archive.Encode(timeKey, float64(t)-EpochDelta)
}

// decodeTimestamp is the NSDate decode delegate.
func decodeTimestamp(archive Archive) (any, error) {
	value, err := archive.Decode(timeKey)
	if err != nil {
		return nil, err
	}
	offset, ok := value.(float64)
	if !ok {
		return nil, newAdapterError(ErrFieldType, "NSDate", timeKey)
	}
	return Timestamp(EpochDelta + offset), nil
}
