package codable

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Parse builds a tree from JSON text. Object members keep document order
// and number literals keep their exact text. When an object repeats a key
// the last value wins and the key keeps its first position. Text that is
// not valid UTF-8 is rejected.
func Parse(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, diagnose(data)
	}
	if !utf8.Valid(data) {
		return nil, invalidUTF8(data)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// fromResult converts a validated gjson result into a Node.
func fromResult(r gjson.Result) *Node {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return &Node{kind: KindNumber, text: r.Raw}
	case gjson.String:
		return String(r.Str)
	}

	if r.IsArray() {
		seq := Sequence()
		r.ForEach(func(_, value gjson.Result) bool {
			seq.Append(fromResult(value))
			return true
		})
		return seq
	}

	m := Mapping()
	r.ForEach(func(key, value gjson.Result) bool {
		m.Set(key.Str, fromResult(value))
		return true
	})
	return m
}

// diagnose locates the first syntax error in data.
func diagnose(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &ParseError{Detail: "empty input"}
	}

	var v any
	err := json.Unmarshal(data, &v)

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := position(data, syn.Offset)
		return &ParseError{Offset: syn.Offset, Line: line, Column: col, Detail: syn.Error()}
	}
	if err != nil {
		return &ParseError{Detail: err.Error()}
	}
	return &ParseError{Detail: "malformed JSON text"}
}

// invalidUTF8 locates the first byte that does not start a valid UTF-8
// sequence.
func invalidUTF8(data []byte) error {
	var offset int64
	for len(data[offset:]) > 0 {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		offset += int64(size)
	}
	line, col := position(data, offset)
	return &ParseError{Offset: offset, Line: line, Column: col, Detail: "invalid UTF-8 byte sequence"}
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
