// Package codabletest provides test utilities for codable.
package codabletest

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/codable"
)

// MustParse parses doc or fails the test.
func MustParse(t testing.TB, doc string) *codable.Node {
	t.Helper()
	n, err := codable.Parse([]byte(doc))
	require.NoError(t, err, "parse %s", doc)
	return n
}

// RequireEquivalent fails the test unless want and got hold the same JSON
// data, ignoring member order and number spelling.
func RequireEquivalent(t testing.TB, want, got []byte) {
	t.Helper()
	w := MustParse(t, string(want))
	g := MustParse(t, string(got))
	if !codable.Equivalent(w, g) {
		t.Fatalf("documents differ\nwant: %s\ngot:  %s", codable.Canonical(w), codable.Canonical(g))
	}
}

// RoundTrip decodes doc into T, encodes the result and requires the output
// to be equivalent to doc. It returns the decoded value.
func RoundTrip[T any, PT codable.CodablePtr[T]](t testing.TB, doc string) T {
	t.Helper()
	v, err := codable.Decode[T, PT]([]byte(doc))
	require.NoError(t, err)

	out, err := codable.Encode(PT(&v))
	require.NoError(t, err, "encode %s", spew.Sdump(v))

	RequireEquivalent(t, []byte(doc), out)
	return v
}

// FormatRoundTrip runs doc through format f and back, and requires the
// tree to come out equal, member order included.
func FormatRoundTrip(t testing.TB, f codable.Format, doc string) []byte {
	t.Helper()
	in := MustParse(t, doc)

	data, err := f.Marshal(in)
	require.NoError(t, err)

	out, err := f.Unmarshal(data)
	require.NoError(t, err)

	if !codable.Equal(in, out) {
		t.Fatalf("%s round trip changed the tree\nwant: %s\ngot:  %s\n%s",
			f.ContentType(), codable.Marshal(in), codable.Marshal(out), spew.Sdump(data))
	}
	return data
}
