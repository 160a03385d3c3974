package codable

import "encoding"

// DecodeText reads k as a string and hands it to dst.UnmarshalText.
// A rejected string fails with ErrValueInvalid.
func (c *KeyedContainer) DecodeText(k Key, dst encoding.TextUnmarshaler) error {
	s, err := c.DecodeString(k)
	if err != nil {
		return err
	}
	if err := dst.UnmarshalText([]byte(s)); err != nil {
		return newCauseError(ErrValueInvalid, c.path.key(k).String(), "rejected text", err)
	}
	return nil
}

// EncodeText writes v.MarshalText under k as a string.
func (c *KeyedContainer) EncodeText(k Key, v encoding.TextMarshaler) error {
	b, err := v.MarshalText()
	if err != nil {
		return newCauseError(ErrValueInvalid, c.path.key(k).String(), "text marshal", err)
	}
	c.EncodeString(k, string(b))
	return nil
}
