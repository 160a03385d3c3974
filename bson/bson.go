// Package bson provides a BSON format for codable trees.
package bson

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/zoobzio/codable"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const contentType = "application/bson"

// errNotDocument reports a top-level value BSON cannot hold.
var errNotDocument = errors.New("bson top level must be a mapping")

// bsonFormat implements codable.Format for BSON.
type bsonFormat struct{}

// New returns a BSON format. Documents are built as bson.D so member order
// is preserved. Only mappings can be the top-level value.
func New() codable.Format {
	return &bsonFormat{}
}

// ContentType returns the MIME type for BSON.
func (f *bsonFormat) ContentType() string {
	return contentType
}

// Marshal encodes n as a BSON document.
func (f *bsonFormat) Marshal(n *codable.Node) ([]byte, error) {
	if n.Kind() != codable.KindMapping {
		return nil, codable.NewFormatError(codable.ErrUnsupported, contentType, "marshal", errNotDocument)
	}
	out, err := bson.Marshal(toDocument(n))
	if err != nil {
		return nil, codable.NewFormatError(codable.ErrUnsupported, contentType, "marshal", err)
	}
	return out, nil
}

// Unmarshal decodes a BSON document into a tree.
func (f *bsonFormat) Unmarshal(data []byte) (*codable.Node, error) {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, codable.NewFormatError(codable.ErrParse, contentType, "unmarshal", err)
	}
	n, err := fromValue(doc)
	if err != nil {
		return nil, codable.NewFormatError(codable.ErrUnsupported, contentType, "unmarshal", err)
	}
	return n, nil
}

func toDocument(n *codable.Node) bson.D {
	doc := make(bson.D, 0, n.Len())
	for i, k := range n.Keys() {
		doc = append(doc, bson.E{Key: k, Value: toValue(n.At(i))})
	}
	return doc
}

func toValue(n *codable.Node) any {
	switch n.Kind() {
	case codable.KindBool:
		b, _ := n.AsBool()
		return b
	case codable.KindNumber:
		text, _ := n.NumberText()
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
		f, _ := n.AsFloat()
		return f
	case codable.KindString:
		s, _ := n.AsString()
		return s
	case codable.KindSequence:
		arr := make(bson.A, 0, n.Len())
		for i := 0; i < n.Len(); i++ {
			arr = append(arr, toValue(n.At(i)))
		}
		return arr
	case codable.KindMapping:
		return toDocument(n)
	}
	return nil
}

func fromValue(v any) (*codable.Node, error) {
	switch x := v.(type) {
	case nil:
		return codable.Null(), nil
	case primitive.Null, primitive.Undefined:
		return codable.Null(), nil
	case bool:
		return codable.Bool(x), nil
	case int32:
		return codable.Int(int64(x)), nil
	case int64:
		return codable.Int(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("float %v has no JSON form", x)
		}
		return codable.Float(x), nil
	case primitive.Decimal128:
		return codable.Number(x.String())
	case string:
		return codable.String(x), nil
	case bson.D:
		m := codable.Mapping()
		for _, e := range x {
			c, err := fromValue(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Key, err)
			}
			m.Set(e.Key, c)
		}
		return m, nil
	case bson.M:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := codable.Mapping()
		for _, k := range keys {
			c, err := fromValue(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m.Set(k, c)
		}
		return m, nil
	case bson.A:
		return fromSlice(x)
	case []any:
		return fromSlice(x)
	}
	return nil, fmt.Errorf("unsupported bson value of type %T", v)
}

func fromSlice(items []any) (*codable.Node, error) {
	seq := codable.Sequence()
	for i, it := range items {
		c, err := fromValue(it)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		seq.Append(c)
	}
	return seq, nil
}
