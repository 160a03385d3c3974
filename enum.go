package codable

import (
	"fmt"
	"strings"
)

// Case pairs an enumeration symbol with its wire name.
type Case[T comparable] struct {
	Symbol T
	Name   string
}

// Enum is a closed table between symbols and wire names.
// Every symbol has exactly one name and every name one symbol.
type Enum[T comparable] struct {
	typeName string
	cases    []Case[T]
	byName   map[string]T
	bySymbol map[T]string
}

// NewEnum builds the table for the enumeration called typeName.
// It panics on a repeated symbol or name, since the table is static.
func NewEnum[T comparable](typeName string, cases ...Case[T]) *Enum[T] {
	e := &Enum[T]{
		typeName: typeName,
		cases:    cases,
		byName:   make(map[string]T, len(cases)),
		bySymbol: make(map[T]string, len(cases)),
	}
	for _, c := range cases {
		if _, dup := e.byName[c.Name]; dup {
			panic(fmt.Sprintf("codable: %s name %q declared twice", typeName, c.Name))
		}
		if _, dup := e.bySymbol[c.Symbol]; dup {
			panic(fmt.Sprintf("codable: %s symbol %v declared twice", typeName, c.Symbol))
		}
		e.byName[c.Name] = c.Symbol
		e.bySymbol[c.Symbol] = c.Name
	}
	return e
}

// Parse returns the symbol whose wire name is name.
func (e *Enum[T]) Parse(name string) (T, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// Name returns the wire name of v.
func (e *Enum[T]) Name(v T) (string, bool) {
	s, ok := e.bySymbol[v]
	return s, ok
}

// Names returns the wire names in declaration order.
func (e *Enum[T]) Names() []string {
	out := make([]string, len(e.cases))
	for i, c := range e.cases {
		out[i] = c.Name
	}
	return out
}

// Decode reads k as a member name. A string outside the table fails with
// ErrValueInvalid; a non-string fails with ErrTypeMismatch.
func (e *Enum[T]) Decode(c *KeyedContainer, k Key) (T, error) {
	s, err := c.DecodeString(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.lookup(c.path.key(k), s)
}

// DecodeSingle reads the value of c as a member name.
func (e *Enum[T]) DecodeSingle(c *SingleValueContainer) (T, error) {
	s, err := c.DecodeString()
	if err != nil {
		var zero T
		return zero, err
	}
	return e.lookup(c.path, s)
}

// Encode writes the name of v under k.
func (e *Enum[T]) Encode(c *KeyedContainer, k Key, v T) error {
	name, ok := e.bySymbol[v]
	if !ok {
		return newPathError(ErrValueInvalid, c.path.key(k).String(), fmt.Sprintf("%v is not a %s", v, e.typeName))
	}
	c.EncodeString(k, name)
	return nil
}

// EncodeSingle writes the name of v into c.
func (e *Enum[T]) EncodeSingle(c *SingleValueContainer, v T) error {
	name, ok := e.bySymbol[v]
	if !ok {
		return newPathError(ErrValueInvalid, c.Path(), fmt.Sprintf("%v is not a %s", v, e.typeName))
	}
	return c.EncodeString(name)
}

func (e *Enum[T]) lookup(path codingPath, s string) (T, error) {
	v, ok := e.byName[s]
	if !ok {
		var zero T
		return zero, newPathError(ErrValueInvalid, path.String(),
			fmt.Sprintf("%q is not a %s (want one of %s)", s, e.typeName, strings.Join(e.Names(), ", ")))
	}
	return v, nil
}
