package codable

import (
	"fmt"
	"time"
)

// DateLayout is the wire form of date-time values: calendar date, time and
// a numeric UTC offset, e.g. 2017-11-12T20:06:28+00:00.
const DateLayout = "2006-01-02T15:04:05-07:00"

// ParseDate parses s in DateLayout. Text that DateLayout would not
// reproduce, such as fractional seconds, is rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if FormatDate(t) != s {
		return time.Time{}, fmt.Errorf("%q does not match layout %s", s, DateLayout)
	}
	return t, nil
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DecodeDate reads k as a DateLayout string. A string in any other form
// fails with ErrValueInvalid.
func (c *KeyedContainer) DecodeDate(k Key) (time.Time, error) {
	s, err := c.DecodeString(k)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, newCauseError(ErrValueInvalid, c.path.key(k).String(),
			fmt.Sprintf("%q is not a date in %s form", s, DateLayout), err)
	}
	return t, nil
}

// EncodeDate writes t under k in DateLayout.
func (c *KeyedContainer) EncodeDate(k Key, t time.Time) {
	c.EncodeString(k, FormatDate(t))
}
