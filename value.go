package codable

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one value of the in-memory tree: null, bool, number, string,
// an ordered sequence, or a mapping with unique string keys kept in
// insertion order.
//
// Numbers keep their decimal text so that values pass through decode and
// encode without float rounding.
type Node struct {
	kind  Kind
	flag  bool
	text  string
	items []*Node
	keys  []string
	index map[string]int
}

// Null returns a null node.
func Null() *Node { return &Node{kind: KindNull} }

// Bool returns a boolean node.
func Bool(b bool) *Node { return &Node{kind: KindBool, flag: b} }

// String returns a string node.
func String(s string) *Node { return &Node{kind: KindString, text: s} }

// Int returns a number node holding an integer.
func Int(i int64) *Node {
	return &Node{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

// Uint returns a number node holding an unsigned integer.
func Uint(u uint64) *Node {
	return &Node{kind: KindNumber, text: strconv.FormatUint(u, 10)}
}

// Float returns a number node in the shortest form that round-trips f.
// NaN and infinities have no JSON form and yield nil.
func Float(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &Node{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a number node holding the JSON number text s.
func Number(s string) (*Node, error) {
	r := gjson.Parse(s)
	if r.Type != gjson.Number || r.Raw != s || !gjson.Valid(s) {
		return nil, newPathError(ErrValueInvalid, "", strconv.Quote(s)+" is not a JSON number")
	}
	return &Node{kind: KindNumber, text: s}, nil
}

// Sequence returns a sequence node holding items in order.
func Sequence(items ...*Node) *Node {
	n := &Node{kind: KindSequence, items: make([]*Node, 0, len(items))}
	for _, it := range items {
		n.Append(it)
	}
	return n
}

// Mapping returns an empty mapping node.
func Mapping() *Node {
	return &Node{kind: KindMapping, index: make(map[string]int)}
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// IsNull reports whether n is null.
func (n *Node) IsNull() bool { return n.kind == KindNull }

// AsBool returns the boolean held by n.
func (n *Node) AsBool() (bool, bool) {
	return n.flag, n.kind == KindBool
}

// AsString returns the string held by n.
func (n *Node) AsString() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// NumberText returns the decimal text of a number node.
func (n *Node) NumberText() (string, bool) {
	if n.kind != KindNumber {
		return "", false
	}
	return n.text, true
}

// AsInt converts a number node to int64. Numbers written with a fraction
// or exponent convert when they are integral and in range.
func (n *Node) AsInt() (int64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.text, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(n.text, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// AsFloat converts a number node to float64.
func (n *Node) AsFloat() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Len returns the number of elements of a sequence or entries of a mapping.
func (n *Node) Len() int {
	switch n.kind {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.keys)
	}
	return 0
}

// At returns the i-th element of a sequence, or the value of the i-th entry
// of a mapping.
func (n *Node) At(i int) *Node {
	return n.items[i]
}

// Keys returns a mapping's keys in insertion order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Get returns the value stored under key in a mapping.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.items[i], true
}

// Set stores v under key. Writing a key that already exists replaces its
// value and keeps the position of the first write.
// Set panics if n is not a mapping.
func (n *Node) Set(key string, v *Node) {
	if n.kind != KindMapping {
		panic("codable: Set on " + n.kind.String() + " node")
	}
	if v == nil {
		v = Null()
	}
	if i, ok := n.index[key]; ok {
		n.items[i] = v
		return
	}
	n.index[key] = len(n.keys)
	n.keys = append(n.keys, key)
	n.items = append(n.items, v)
}

// Append adds v to the end of a sequence.
// Append panics if n is not a sequence.
func (n *Node) Append(v *Node) {
	if n.kind != KindSequence {
		panic("codable: Append on " + n.kind.String() + " node")
	}
	if v == nil {
		v = Null()
	}
	n.items = append(n.items, v)
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	c := &Node{kind: n.kind, flag: n.flag, text: n.text}
	switch n.kind {
	case KindSequence:
		c.items = make([]*Node, len(n.items))
		for i, it := range n.items {
			c.items[i] = it.Clone()
		}
	case KindMapping:
		c.index = make(map[string]int, len(n.keys))
		for i, k := range n.keys {
			c.Set(k, n.items[i].Clone())
		}
	}
	return c
}

// assign overwrites n in place with the contents of v.
func (n *Node) assign(v *Node) {
	*n = *v
}
