package codable

import (
	"encoding/hex"
	"math"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
	"golang.org/x/crypto/blake2b"
)

// Canonical renders n as compact JSON with mapping keys sorted and numbers
// in a canonical form, so that documents differing only in member order or
// number spelling render identically.
func Canonical(n *Node) []byte {
	return appendCanonical(nil, n)
}

// Fingerprint returns the BLAKE2b-256 digest of Canonical(n).
func Fingerprint(n *Node) [32]byte {
	return blake2b.Sum256(Canonical(n))
}

// FingerprintHex returns Fingerprint(n) hex-encoded.
func FingerprintHex(n *Node) string {
	sum := Fingerprint(n)
	return hex.EncodeToString(sum[:])
}

// Equivalent reports whether a and b hold the same data regardless of member
// order and number spelling.
func Equivalent(a, b *Node) bool {
	return string(Canonical(a)) == string(Canonical(b))
}

// Equal reports whether a and b hold the same data with members in the same
// order. Numbers compare canonically.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.flag == b.flag
	case KindNumber:
		return canonicalNumber(a.text) == canonicalNumber(b.text)
	case KindString:
		return a.text == b.text
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i := range a.keys {
			if a.keys[i] != b.keys[i] || !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func appendCanonical(dst []byte, n *Node) []byte {
	switch n.kind {
	case KindNumber:
		return append(dst, canonicalNumber(n.text)...)
	case KindSequence:
		dst = append(dst, '[')
		for i, it := range n.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendCanonical(dst, it)
		}
		return append(dst, ']')
	case KindMapping:
		order := make([]int, len(n.keys))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return n.keys[order[i]] < n.keys[order[j]] })
		dst = append(dst, '{')
		for i, idx := range order {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = gjson.AppendJSONString(dst, n.keys[idx])
			dst = append(dst, ':')
			dst = appendCanonical(dst, n.items[idx])
		}
		return append(dst, '}')
	}
	return appendNode(dst, n)
}

// canonicalNumber spells integers in decimal and other numbers in the
// shortest form that round-trips through float64.
func canonicalNumber(text string) string {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
