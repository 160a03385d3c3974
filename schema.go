package codable

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag that sets a field's wire name.
// `codable:"imageurl"` renames, `codable:"-"` keeps the field local.
const TagName = "codable"

func init() {
	sentinel.Tag(TagName)
}

// KeysFor derives the KeySet of struct type T from its fields.
// Each field's declared name is its Go name. Its wire name comes from the
// codable tag, or is the Go name with a lower-case first letter.
func KeysFor[T any]() *KeySet {
	meta := sentinel.Scan[T]()
	keys := make([]Key, 0, len(meta.Fields))
	for _, field := range meta.Fields {
		wire, tagged := field.Tags[TagName]
		if tagged {
			wire, _, _ = strings.Cut(wire, ",")
		}
		switch {
		case wire == "-":
			continue
		case wire == "":
			wire = lowerFirst(field.Name)
		}
		keys = append(keys, NewKey(field.Name, wire))
	}
	return NewKeySet(keys...)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
