package codable

import (
	"sort"
)

// KeyedContainer views a mapping through keys. Reads and writes address a
// key's wire name.
type KeyedContainer struct {
	node *Node
	keys *KeySet
	path codingPath
}

// Path returns the coding path of the mapping.
func (c *KeyedContainer) Path() string { return c.path.String() }

// Keys returns the static schema the container was opened with, or nil.
func (c *KeyedContainer) Keys() *KeySet { return c.keys }

// Len returns the number of members present.
func (c *KeyedContainer) Len() int { return c.node.Len() }

// Contains reports whether k is present.
func (c *KeyedContainer) Contains(k Key) bool {
	_, ok := c.node.Get(k.Wire())
	return ok
}

// AllKeys returns the keys present in the mapping in document order.
// With a static schema only declared members are returned, as their
// declared keys. Without one every member is returned as a DynamicKey.
func (c *KeyedContainer) AllKeys() []Key {
	out := make([]Key, 0, c.node.Len())
	for _, wire := range c.node.keys {
		if c.keys == nil {
			out = append(out, DynamicKey(wire))
			continue
		}
		if k, ok := c.keys.ForWire(wire); ok {
			out = append(out, k)
		}
	}
	return out
}

// Node returns the raw value stored under k.
func (c *KeyedContainer) Node(k Key) (*Node, error) {
	n, ok := c.node.Get(k.Wire())
	if !ok {
		return nil, newPathError(ErrKeyMissing, c.path.key(k).String(), "no value for key "+k.Wire())
	}
	return n, nil
}

// DecodeNil reports whether k holds null. A missing key fails.
func (c *KeyedContainer) DecodeNil(k Key) (bool, error) {
	n, err := c.Node(k)
	if err != nil {
		return false, err
	}
	return n.IsNull(), nil
}

// DecodeString reads k as a string.
func (c *KeyedContainer) DecodeString(k Key) (string, error) {
	n, err := c.Node(k)
	if err != nil {
		return "", err
	}
	return toString(c.path.key(k), n)
}

// DecodeBool reads k as a bool.
func (c *KeyedContainer) DecodeBool(k Key) (bool, error) {
	n, err := c.Node(k)
	if err != nil {
		return false, err
	}
	return toBool(c.path.key(k), n)
}

// DecodeInt reads k as an integer.
func (c *KeyedContainer) DecodeInt(k Key) (int64, error) {
	n, err := c.Node(k)
	if err != nil {
		return 0, err
	}
	return toInt(c.path.key(k), n)
}

// DecodeFloat reads k as a float.
func (c *KeyedContainer) DecodeFloat(k Key) (float64, error) {
	n, err := c.Node(k)
	if err != nil {
		return 0, err
	}
	return toFloat(c.path.key(k), n)
}

// DecodeStrings reads k as a sequence of strings.
func (c *KeyedContainer) DecodeStrings(k Key) ([]string, error) {
	n, err := c.Node(k)
	if err != nil {
		return nil, err
	}
	return toStrings(c.path.key(k), n)
}

// DecodeStringMap reads k as a mapping of strings.
func (c *KeyedContainer) DecodeStringMap(k Key) (map[string]string, error) {
	nested, err := c.NestedContainer(k, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, nested.Len())
	for _, key := range nested.AllKeys() {
		s, err := nested.DecodeString(key)
		if err != nil {
			return nil, err
		}
		out[key.Wire()] = s
	}
	return out, nil
}

// Decode decodes the value under k into v through v's own codec.
func (c *KeyedContainer) Decode(k Key, v Decodable) error {
	d, err := c.Decoder(k)
	if err != nil {
		return err
	}
	return v.DecodeFrom(d)
}

// Decoder returns a Decoder for the value under k.
func (c *KeyedContainer) Decoder(k Key) (*Decoder, error) {
	n, err := c.Node(k)
	if err != nil {
		return nil, err
	}
	return &Decoder{node: n, path: c.path.key(k)}, nil
}

// NestedContainer views the mapping under k. Pass nil keys for an open schema.
func (c *KeyedContainer) NestedContainer(k Key, keys *KeySet) (*KeyedContainer, error) {
	d, err := c.Decoder(k)
	if err != nil {
		return nil, err
	}
	return d.KeyedContainer(keys)
}

// NestedIndexedContainer views the sequence under k.
func (c *KeyedContainer) NestedIndexedContainer(k Key) (*IndexedContainer, error) {
	d, err := c.Decoder(k)
	if err != nil {
		return nil, err
	}
	return d.IndexedContainer()
}

// Set stores n under k. Writing the same key twice keeps the later value
// at the earlier position.
func (c *KeyedContainer) Set(k Key, n *Node) {
	c.node.Set(k.Wire(), n)
}

// EncodeNil writes null under k.
func (c *KeyedContainer) EncodeNil(k Key) { c.Set(k, Null()) }

// EncodeString writes s under k.
func (c *KeyedContainer) EncodeString(k Key, s string) { c.Set(k, String(s)) }

// EncodeBool writes b under k.
func (c *KeyedContainer) EncodeBool(k Key, b bool) { c.Set(k, Bool(b)) }

// EncodeInt writes i under k.
func (c *KeyedContainer) EncodeInt(k Key, i int64) { c.Set(k, Int(i)) }

// EncodeFloat writes f under k. NaN and infinities fail with ErrValueInvalid.
func (c *KeyedContainer) EncodeFloat(k Key, f float64) error {
	n, err := floatNode(c.path.key(k), f)
	if err != nil {
		return err
	}
	c.Set(k, n)
	return nil
}

// EncodeStrings writes values under k as a sequence.
func (c *KeyedContainer) EncodeStrings(k Key, values []string) {
	c.Set(k, fromStrings(values))
}

// EncodeStringMap writes m under k as a mapping with sorted keys.
func (c *KeyedContainer) EncodeStringMap(k Key, m map[string]string) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	nested := c.EncodeNestedContainer(k, nil)
	for _, name := range names {
		nested.EncodeString(DynamicKey(name), m[name])
	}
}

// Encode writes v under k through v's own codec.
func (c *KeyedContainer) Encode(k Key, v Encodable) error {
	return v.EncodeTo(c.Encoder(k))
}

// Encoder returns an Encoder for a fresh slot under k.
func (c *KeyedContainer) Encoder(k Key) *Encoder {
	slot := Null()
	c.Set(k, slot)
	return newChildEncoder(slot, c.path.key(k))
}

// EncodeNestedContainer opens a mapping under k. An existing mapping at k is
// reused so that several writers can fill one wrapper.
func (c *KeyedContainer) EncodeNestedContainer(k Key, keys *KeySet) *KeyedContainer {
	n, ok := c.node.Get(k.Wire())
	if !ok || n.Kind() != KindMapping {
		n = Mapping()
		c.Set(k, n)
	}
	return &KeyedContainer{node: n, keys: keys, path: c.path.key(k)}
}

// EncodeNestedIndexedContainer opens a sequence under k. An existing sequence
// at k is appended to.
func (c *KeyedContainer) EncodeNestedIndexedContainer(k Key) *IndexedContainer {
	n, ok := c.node.Get(k.Wire())
	if !ok || n.Kind() != KindSequence {
		n = Sequence()
		c.Set(k, n)
	}
	return &IndexedContainer{node: n, path: c.path.key(k), cursor: n.Len()}
}
