package codable

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// prettyOptions indents with two spaces and never reorders keys.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Marshal renders n as compact JSON with mapping keys in write order.
func Marshal(n *Node) []byte {
	return appendNode(nil, n)
}

// MarshalIndent renders n as indented JSON with mapping keys in write order.
func MarshalIndent(n *Node) []byte {
	return pretty.PrettyOptions(Marshal(n), prettyOptions)
}

func appendNode(dst []byte, n *Node) []byte {
	if n == nil {
		return append(dst, "null"...)
	}
	switch n.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if n.flag {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, n.text...)
	case KindString:
		return gjson.AppendJSONString(dst, n.text)
	case KindSequence:
		dst = append(dst, '[')
		for i, it := range n.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNode(dst, it)
		}
		return append(dst, ']')
	case KindMapping:
		dst = append(dst, '{')
		for i, k := range n.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = gjson.AppendJSONString(dst, k)
			dst = append(dst, ':')
			dst = appendNode(dst, n.items[i])
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}
