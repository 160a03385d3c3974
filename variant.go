package codable

import (
	"context"
	"fmt"
)

// Candidate is one interpretation of a raw value. Match returns the
// constructed variant and true when the value is acceptable to it.
type Candidate[T any] struct {
	Name  string
	Match func(n *Node) (T, bool)
}

// Resolver picks the first candidate, in order, that accepts a raw value.
// The candidate order is part of the wire format and must stay stable.
//
// When no candidate matches, the fallback constructs the result. A Resolver
// without a fallback fails with ErrValueInvalid instead.
type Resolver[T any] struct {
	name       string
	candidates []Candidate[T]
	fallback   func(n *Node) T
}

// NewResolver returns a Resolver for the variant type called name.
func NewResolver[T any](name string, candidates ...Candidate[T]) *Resolver[T] {
	return &Resolver[T]{name: name, candidates: candidates}
}

// WithFallback returns a copy of r that never fails: unmatched values are
// handed to fallback.
func (r *Resolver[T]) WithFallback(fallback func(n *Node) T) *Resolver[T] {
	return &Resolver[T]{name: r.name, candidates: r.candidates, fallback: fallback}
}

// Resolve decodes the value held by c. It returns the variant and the name
// of the candidate that produced it, or "fallback".
func (r *Resolver[T]) Resolve(c *SingleValueContainer) (T, string, error) {
	n := c.Node()
	for _, cand := range r.candidates {
		if v, ok := cand.Match(n); ok {
			return v, cand.Name, nil
		}
	}
	if r.fallback == nil {
		var zero T
		return zero, "", newPathError(ErrValueInvalid, c.Path(),
			fmt.Sprintf("%s value of kind %s matches no variant", r.name, n.Kind()))
	}
	emitVariantFallback(context.Background(), r.name, c.Path())
	return r.fallback(n), "fallback", nil
}

// StringCandidate adapts a predicate over strings into a Candidate.
func StringCandidate[T any](name string, match func(s string) (T, bool)) Candidate[T] {
	return Candidate[T]{
		Name: name,
		Match: func(n *Node) (T, bool) {
			s, ok := n.AsString()
			if !ok {
				var zero T
				return zero, false
			}
			return match(s)
		},
	}
}
