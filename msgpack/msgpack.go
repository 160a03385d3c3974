// Package msgpack provides a MessagePack format for codable trees.
package msgpack

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"github.com/zoobzio/codable"
)

const contentType = "application/msgpack"

// msgpackFormat implements codable.Format for MessagePack.
type msgpackFormat struct{}

// New returns a MessagePack format. Maps are written with explicit length
// headers in tree order, so member order survives a round trip.
func New() codable.Format {
	return &msgpackFormat{}
}

// ContentType returns the MIME type for MessagePack.
func (f *msgpackFormat) ContentType() string {
	return contentType
}

// Marshal encodes n as MessagePack.
func (f *msgpackFormat) Marshal(n *codable.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeNode(enc, n); err != nil {
		return nil, codable.NewFormatError(codable.ErrUnsupported, contentType, "marshal", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into a tree.
func (f *msgpackFormat) Unmarshal(data []byte) (*codable.Node, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := decodeNode(dec)
	if err != nil {
		return nil, codable.NewFormatError(codable.ErrParse, contentType, "unmarshal", err)
	}
	return n, nil
}

func encodeNode(enc *msgpack.Encoder, n *codable.Node) error {
	switch n.Kind() {
	case codable.KindNull:
		return enc.EncodeNil()
	case codable.KindBool:
		b, _ := n.AsBool()
		return enc.EncodeBool(b)
	case codable.KindNumber:
		return encodeNumber(enc, n)
	case codable.KindString:
		s, _ := n.AsString()
		return enc.EncodeString(s)
	case codable.KindSequence:
		if err := enc.EncodeArrayLen(n.Len()); err != nil {
			return err
		}
		for i := 0; i < n.Len(); i++ {
			if err := encodeNode(enc, n.At(i)); err != nil {
				return err
			}
		}
		return nil
	case codable.KindMapping:
		if err := enc.EncodeMapLen(n.Len()); err != nil {
			return err
		}
		for i, k := range n.Keys() {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encodeNode(enc, n.At(i)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown node kind %s", n.Kind())
}

// encodeNumber picks the narrowest MessagePack type that holds the text.
func encodeNumber(enc *msgpack.Encoder, n *codable.Node) error {
	text, _ := n.NumberText()
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return enc.EncodeInt(i)
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return enc.EncodeUint(u)
	}
	f, _ := n.AsFloat()
	return enc.EncodeFloat64(f)
}

func decodeNode(dec *msgpack.Decoder) (*codable.Node, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case c == msgpcode.Nil:
		if err := dec.DecodeNil(); err != nil {
			return nil, err
		}
		return codable.Null(), nil
	case c == msgpcode.False || c == msgpcode.True:
		b, err := dec.DecodeBool()
		if err != nil {
			return nil, err
		}
		return codable.Bool(b), nil
	case c == msgpcode.Float || c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return nil, err
		}
		n := codable.Float(f)
		if n == nil {
			return nil, fmt.Errorf("float %v has no JSON form", f)
		}
		return n, nil
	case c == msgpcode.Uint64:
		u, err := dec.DecodeUint64()
		if err != nil {
			return nil, err
		}
		return codable.Uint(u), nil
	case msgpcode.IsFixedNum(c) || isInt(c):
		i, err := dec.DecodeInt64()
		if err != nil {
			return nil, err
		}
		return codable.Int(i), nil
	case msgpcode.IsString(c) || msgpcode.IsBin(c):
		s, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}
		return codable.String(s), nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		size, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		seq := codable.Sequence()
		for i := 0; i < size; i++ {
			v, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			seq.Append(v)
		}
		return seq, nil
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		size, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		m := codable.Mapping()
		for i := 0; i < size; i++ {
			k, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			v, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("unsupported msgpack code 0x%x", c)
}

func isInt(c byte) bool {
	switch c {
	case msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32,
		msgpcode.Int8, msgpcode.Int16, msgpcode.Int32, msgpcode.Int64:
		return true
	}
	return false
}
