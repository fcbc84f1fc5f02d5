// Package epoch provides a Millis type that marshals as a JSON number of
// milliseconds since the Unix epoch.
package epoch

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const displayFormat = "2006-01-02 15:04"

// maxMillis is the largest magnitude a JavaScript Date accepts (±100M days).
const maxMillis = 8.64e15

// Millis is a point in time with millisecond precision.
type Millis int64

// FromTime converts t to Millis.
func FromTime(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// Now returns the current time as Millis.
func Now() Millis {
	return FromTime(time.Now())
}

// Time returns m as a local time.Time.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// String returns m formatted as "YYYY-MM-DD HH:MM" in local time.
func (m Millis) String() string {
	return m.Time().Format(displayFormat)
}

// MarshalJSON implements json.Marshaler.
func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

// UnmarshalJSON implements json.Unmarshaler. Fractional values are truncated.
func (m *Millis) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Millis(math.Trunc(f))
	return nil
}

// Coerce converts a loosely-typed decoded JSON value to Millis using the
// same rules as JavaScript's Number(): numbers pass through, strings are
// parsed after trimming (empty is 0), booleans become 1 or 0, null is 0, and
// an array converts through its single element. The second result is false
// when the value is zero, not a finite number, or out of Date range.
func Coerce(v any) (Millis, bool) {
	f := toNumber(v)
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxMillis {
		return 0, false
	}
	return Millis(math.Trunc(f)), true
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case json.Number:
		return parseNumber(string(x))
	case string:
		return parseNumber(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case []any:
		switch len(x) {
		case 0:
			return 0
		case 1:
			switch el := x[0].(type) {
			case nil:
				return 0
			case float64, string, json.Number, []any:
				return toNumber(el)
			}
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Number() also accepts 0x, 0o and 0b integer literals.
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			if n, err := strconv.ParseUint(s, 0, 64); err == nil {
				return float64(n)
			}
		}
	}
	return math.NaN()
}
