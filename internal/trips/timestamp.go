package trips

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTimestamp matches every timestamp the upstream sends that cannot
// be interpreted, even after repair.
var ErrMalformedTimestamp = errors.New("malformed upstream timestamp")

// MalformedTimestampError carries the offending value.
type MalformedTimestampError struct {
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed upstream timestamp %q: %v", e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}

func (e *MalformedTimestampError) Is(target error) bool {
	return target == ErrMalformedTimestamp
}

// ParseTimestamp converts an upstream timestamp into a time.Time.
//
// The travel API writes offsets without a colon ("2024-05-01T10:15:00+0200"),
// which is not RFC 3339. Such values are repaired by re-inserting the colon
// before the last two digits; a truncated "+02" offset gets ":00" appended.
// Values that already carry a colon (or "Z") are parsed unchanged.
func ParseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	repaired, ok := repairOffset(raw)
	if !ok {
		return time.Time{}, &MalformedTimestampError{Value: raw, Err: errors.New("no numeric zone offset")}
	}

	t, err := time.Parse(time.RFC3339, repaired)
	if err != nil {
		return time.Time{}, &MalformedTimestampError{Value: raw, Err: err}
	}
	return t, nil
}

// repairOffset rewrites a trailing "+hhmm" as "+hh:mm" and a bare "+hh" as
// "+hh:00". The same holds for negative offsets.
func repairOffset(raw string) (string, bool) {
	if hasOffsetSuffix(raw, 4) {
		n := len(raw)
		return raw[:n-2] + ":" + raw[n-2:], true
	}
	if hasOffsetSuffix(raw, 2) {
		return raw + ":00", true
	}
	return "", false
}

// hasOffsetSuffix reports whether raw ends in a sign followed by digits
// digits, preceded by a time of day.
func hasOffsetSuffix(raw string, digits int) bool {
	n := len(raw)
	if n < digits+2 {
		return false
	}
	sign := raw[n-digits-1]
	if sign != '+' && sign != '-' {
		return false
	}
	if c := raw[n-digits-2]; c < '0' || c > '9' {
		return false
	}
	for i := n - digits; i < n; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
