package codable

// SingleValueContainer views one node without key semantics.
// Reads are idempotent. A container obtained from an Encoder accepts one
// write; containers obtained from a Decoder accept none.
type SingleValueContainer struct {
	node *Node
	path codingPath
	enc  *Encoder
}

// Path returns the coding path of the value.
func (c *SingleValueContainer) Path() string { return c.path.String() }

// Node returns the value. Repeated calls return the same node.
func (c *SingleValueContainer) Node() *Node { return c.node }

// IsNull reports whether the value is null.
func (c *SingleValueContainer) IsNull() bool { return c.node.IsNull() }

// DecodeString reads the value as a string.
func (c *SingleValueContainer) DecodeString() (string, error) { return toString(c.path, c.node) }

// DecodeBool reads the value as a bool.
func (c *SingleValueContainer) DecodeBool() (bool, error) { return toBool(c.path, c.node) }

// DecodeInt reads the value as an integer.
func (c *SingleValueContainer) DecodeInt() (int64, error) { return toInt(c.path, c.node) }

// DecodeFloat reads the value as a float.
func (c *SingleValueContainer) DecodeFloat() (float64, error) { return toFloat(c.path, c.node) }

// Decode decodes the value into v.
func (c *SingleValueContainer) Decode(v Decodable) error {
	return v.DecodeFrom(&Decoder{node: c.node, path: c.path})
}

// Set writes a copy of n into the slot, so later changes to n do not reach
// the encoded tree. A second write fails with ErrAlreadyWritten.
func (c *SingleValueContainer) Set(n *Node) error {
	if c.enc == nil || c.enc.state != stateEmpty {
		return newPathError(ErrAlreadyWritten, c.path.String(), "single value already written")
	}
	if n == nil {
		n = Null()
	}
	c.node.assign(n.Clone())
	c.enc.state = stateSingle
	return nil
}

// EncodeNil writes null.
func (c *SingleValueContainer) EncodeNil() error { return c.Set(Null()) }

// EncodeString writes s.
func (c *SingleValueContainer) EncodeString(s string) error { return c.Set(String(s)) }

// EncodeBool writes b.
func (c *SingleValueContainer) EncodeBool(b bool) error { return c.Set(Bool(b)) }

// EncodeInt writes i.
func (c *SingleValueContainer) EncodeInt(i int64) error { return c.Set(Int(i)) }

// EncodeFloat writes f. NaN and infinities fail with ErrValueInvalid.
func (c *SingleValueContainer) EncodeFloat(f float64) error {
	n, err := floatNode(c.path, f)
	if err != nil {
		return err
	}
	return c.Set(n)
}

// Encode writes v through its own codec.
func (c *SingleValueContainer) Encode(v Encodable) error {
	if c.enc == nil || c.enc.state != stateEmpty {
		return newPathError(ErrAlreadyWritten, c.path.String(), "single value already written")
	}
	return v.EncodeTo(c.enc)
}
