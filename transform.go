package codable

import (
	"fmt"
	"strings"
)

////// Flatten //////

// Injection is a constant member written into a synthesized wrapper on
// encode and ignored on decode.
type Injection struct {
	Key   Key
	Value *Node
}

// Inject returns an Injection of v under k.
func Inject(k Key, v *Node) Injection {
	return Injection{Key: k, Value: v}
}

// Flatten opens the mapping under k and hands it to fn, which reads the
// wrapper's members into fields of the enclosing type.
func (c *KeyedContainer) Flatten(k Key, keys *KeySet, fn func(*KeyedContainer) error) error {
	nested, err := c.NestedContainer(k, keys)
	if err != nil {
		return err
	}
	return fn(nested)
}

// Unflatten synthesizes the mapping under k, writes the injections and then
// lets fn write the enclosing type's fields into it.
func (c *KeyedContainer) Unflatten(k Key, keys *KeySet, fn func(*KeyedContainer) error, inject ...Injection) error {
	nested := c.EncodeNestedContainer(k, keys)
	for _, in := range inject {
		nested.Set(in.Key, in.Value.Clone())
	}
	return fn(nested)
}

////// String <-> pair //////

// SplitPair splits s on sep into its first token and the remaining tokens
// joined by sep. Empty tokens are skipped. It reports false when fewer than
// two tokens are present.
func SplitPair(s, sep string) (string, string, bool) {
	fields := make([]string, 0, 2)
	for _, f := range strings.Split(s, sep) {
		if f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.Join(fields[1:], sep), true
}

// JoinPair is the inverse of SplitPair.
func JoinPair(first, rest, sep string) string {
	return first + sep + rest
}

// DecodeSplit reads k as a string and splits it with SplitPair. A string
// with fewer than two tokens fails with ErrValueInvalid.
func (c *KeyedContainer) DecodeSplit(k Key, sep string) (string, string, error) {
	s, err := c.DecodeString(k)
	if err != nil {
		return "", "", err
	}
	first, rest, ok := SplitPair(s, sep)
	if !ok {
		return "", "", newPathError(ErrValueInvalid, c.path.key(k).String(),
			fmt.Sprintf("%q does not split into two parts on %q", s, sep))
	}
	return first, rest, nil
}

// EncodeJoined writes first and rest under k joined by sep.
func (c *KeyedContainer) EncodeJoined(k Key, first, rest, sep string) {
	c.EncodeString(k, JoinPair(first, rest, sep))
}

////// Dynamic map <-> pairs //////

// Pair is one member of an open-ended mapping.
type Pair struct {
	Key   string
	Value string
}

// DecodePairs reads every member of the mapping under k, in document order.
func (c *KeyedContainer) DecodePairs(k Key) ([]Pair, error) {
	nested, err := c.NestedContainer(k, nil)
	if err != nil {
		return nil, err
	}
	return nested.Pairs()
}

// Pairs reads every member of c as a string pair, in document order.
func (c *KeyedContainer) Pairs() ([]Pair, error) {
	out := make([]Pair, 0, c.Len())
	for _, key := range c.AllKeys() {
		v, err := c.DecodeString(key)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair{Key: key.Wire(), Value: v})
	}
	return out, nil
}

// EncodePairs writes pairs under k as a mapping. A repeated key keeps the
// later value.
func (c *KeyedContainer) EncodePairs(k Key, pairs []Pair) {
	nested := c.EncodeNestedContainer(k, nil)
	nested.SetPairs(pairs)
}

// SetPairs writes pairs into c.
func (c *KeyedContainer) SetPairs(pairs []Pair) {
	for _, p := range pairs {
		c.EncodeString(DynamicKey(p.Key), p.Value)
	}
}
