package codable

// Decodable is implemented by types that read themselves from a Decoder.
// DecodeFrom requests the container view it needs and delegates nested
// values to their own DecodeFrom.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Encodable is implemented by types that write themselves to an Encoder.
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Codable is implemented by types that do both.
type Codable interface {
	Decodable
	Encodable
}

// DecodablePtr constrains *T to implement Decodable.
type DecodablePtr[T any] interface {
	*T
	Decodable
}

// CodablePtr constrains *T to implement Codable.
type CodablePtr[T any] interface {
	*T
	Codable
}

// Decode parses JSON text and decodes it into a new T.
// On failure the zero T is returned with the first error encountered.
func Decode[T any, PT DecodablePtr[T]](data []byte) (T, error) {
	root, err := Parse(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeNode[T, PT](root)
}

// DecodeNode decodes an already parsed tree into a new T.
func DecodeNode[T any, PT DecodablePtr[T]](root *Node) (T, error) {
	var v T
	if err := PT(&v).DecodeFrom(NewDecoder(root)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Encode writes v as indented JSON with members in write order.
func Encode(v Encodable) ([]byte, error) {
	root, err := EncodeNode(v)
	if err != nil {
		return nil, err
	}
	return MarshalIndent(root), nil
}

// EncodeNode writes v into a new tree.
func EncodeNode(v Encodable) (*Node, error) {
	e := NewEncoder()
	if err := v.EncodeTo(e); err != nil {
		return nil, err
	}
	return e.Node(), nil
}

// DecodeValue decodes the value under k into a new T.
func DecodeValue[T any, PT DecodablePtr[T]](c *KeyedContainer, k Key) (T, error) {
	var v T
	if err := c.Decode(k, PT(&v)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeEach decodes the sequence under k into a slice of T.
func DecodeEach[T any, PT DecodablePtr[T]](c *KeyedContainer, k Key) ([]T, error) {
	ic, err := c.NestedIndexedContainer(k)
	if err != nil {
		return nil, err
	}
	return DecodeAll[T, PT](ic)
}

// DecodeAll decodes every remaining element of ic into a slice of T.
func DecodeAll[T any, PT DecodablePtr[T]](ic *IndexedContainer) ([]T, error) {
	out := make([]T, 0, ic.Count()-ic.CurrentIndex())
	for !ic.IsAtEnd() {
		var v T
		if err := ic.DecodeNext(PT(&v)); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeEach writes items under k as a sequence.
func EncodeEach[T Encodable](c *KeyedContainer, k Key, items []T) error {
	ic := c.EncodeNestedIndexedContainer(k)
	return EncodeAll(ic, items)
}

// EncodeAll appends items to ic.
func EncodeAll[T Encodable](ic *IndexedContainer, items []T) error {
	for _, it := range items {
		if err := ic.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
