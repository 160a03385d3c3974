package codable

import "strconv"

// IndexedContainer views a sequence through a cursor. Reads advance the
// cursor; writes append at the end.
type IndexedContainer struct {
	node   *Node
	path   codingPath
	cursor int
}

// Path returns the coding path of the sequence.
func (c *IndexedContainer) Path() string { return c.path.String() }

// Count returns the number of elements.
func (c *IndexedContainer) Count() int { return c.node.Len() }

// CurrentIndex returns the position of the next element to read.
func (c *IndexedContainer) CurrentIndex() int { return c.cursor }

// IsAtEnd reports whether every element has been read.
func (c *IndexedContainer) IsAtEnd() bool { return c.cursor >= c.node.Len() }

// Next returns the element at the cursor and advances past it.
// Calling Next at the end fails with ErrSequenceExhausted.
func (c *IndexedContainer) Next() (*Node, error) {
	if c.IsAtEnd() {
		return nil, newPathError(ErrSequenceExhausted, c.path.index(c.cursor).String(),
			"sequence has "+strconv.Itoa(c.node.Len())+" elements")
	}
	n := c.node.At(c.cursor)
	c.cursor++
	return n, nil
}

// NextDecoder returns a Decoder for the element at the cursor and advances.
func (c *IndexedContainer) NextDecoder() (*Decoder, error) {
	path := c.path.index(c.cursor)
	n, err := c.Next()
	if err != nil {
		return nil, err
	}
	return &Decoder{node: n, path: path}, nil
}

// DecodeNextString reads the next element as a string.
func (c *IndexedContainer) DecodeNextString() (string, error) {
	d, err := c.NextDecoder()
	if err != nil {
		return "", err
	}
	return toString(d.path, d.node)
}

// DecodeNextBool reads the next element as a bool.
func (c *IndexedContainer) DecodeNextBool() (bool, error) {
	d, err := c.NextDecoder()
	if err != nil {
		return false, err
	}
	return toBool(d.path, d.node)
}

// DecodeNextInt reads the next element as an integer.
func (c *IndexedContainer) DecodeNextInt() (int64, error) {
	d, err := c.NextDecoder()
	if err != nil {
		return 0, err
	}
	return toInt(d.path, d.node)
}

// DecodeNextFloat reads the next element as a float.
func (c *IndexedContainer) DecodeNextFloat() (float64, error) {
	d, err := c.NextDecoder()
	if err != nil {
		return 0, err
	}
	return toFloat(d.path, d.node)
}

// DecodeNext decodes the next element into v.
func (c *IndexedContainer) DecodeNext(v Decodable) error {
	d, err := c.NextDecoder()
	if err != nil {
		return err
	}
	return v.DecodeFrom(d)
}

// NestedContainer views the next element as a mapping and advances.
func (c *IndexedContainer) NestedContainer(keys *KeySet) (*KeyedContainer, error) {
	d, err := c.NextDecoder()
	if err != nil {
		return nil, err
	}
	return d.KeyedContainer(keys)
}

// NestedIndexedContainer views the next element as a sequence and advances.
func (c *IndexedContainer) NestedIndexedContainer() (*IndexedContainer, error) {
	d, err := c.NextDecoder()
	if err != nil {
		return nil, err
	}
	return d.IndexedContainer()
}

// Append adds n at the end.
func (c *IndexedContainer) Append(n *Node) { c.node.Append(n) }

// AppendString adds s at the end.
func (c *IndexedContainer) AppendString(s string) { c.Append(String(s)) }

// AppendBool adds b at the end.
func (c *IndexedContainer) AppendBool(b bool) { c.Append(Bool(b)) }

// AppendInt adds i at the end.
func (c *IndexedContainer) AppendInt(i int64) { c.Append(Int(i)) }

// AppendFloat adds f at the end. NaN and infinities fail with ErrValueInvalid.
func (c *IndexedContainer) AppendFloat(f float64) error {
	n, err := floatNode(c.path.index(c.node.Len()), f)
	if err != nil {
		return err
	}
	c.Append(n)
	return nil
}

// Encode appends v through its own codec.
func (c *IndexedContainer) Encode(v Encodable) error {
	return v.EncodeTo(c.Encoder())
}

// Encoder returns an Encoder for a fresh slot at the end.
func (c *IndexedContainer) Encoder() *Encoder {
	path := c.path.index(c.node.Len())
	slot := Null()
	c.Append(slot)
	return newChildEncoder(slot, path)
}

// AppendNestedContainer appends a mapping and returns a view of it.
func (c *IndexedContainer) AppendNestedContainer(keys *KeySet) *KeyedContainer {
	path := c.path.index(c.node.Len())
	n := Mapping()
	c.Append(n)
	return &KeyedContainer{node: n, keys: keys, path: path}
}

// AppendNestedIndexedContainer appends a sequence and returns a view of it.
func (c *IndexedContainer) AppendNestedIndexedContainer() *IndexedContainer {
	path := c.path.index(c.node.Len())
	n := Sequence()
	c.Append(n)
	return &IndexedContainer{node: n, path: path}
}
