package codable

import (
	"fmt"
	"net/url"
)

// ParseAbsoluteURL parses s as a URL that names a scheme and a host.
// Strings that parse but carry no host, or are scheme-relative, are rejected.
func ParseAbsoluteURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, false
	}
	return u, true
}

// IsAbsoluteURL reports whether s is a URL with a scheme and a non-empty host.
func IsAbsoluteURL(s string) bool {
	_, ok := ParseAbsoluteURL(s)
	return ok
}

// DecodeURL reads k as an absolute URL. A string without a host fails with
// ErrValueInvalid.
func (c *KeyedContainer) DecodeURL(k Key) (*url.URL, error) {
	s, err := c.DecodeString(k)
	if err != nil {
		return nil, err
	}
	u, ok := ParseAbsoluteURL(s)
	if !ok {
		return nil, newPathError(ErrValueInvalid, c.path.key(k).String(), fmt.Sprintf("%q is not an absolute URL", s))
	}
	return u, nil
}

// EncodeURL writes u under k.
func (c *KeyedContainer) EncodeURL(k Key, u *url.URL) {
	if u == nil {
		c.EncodeNil(k)
		return
	}
	c.EncodeString(k, u.String())
}
