package profile

import (
	"fmt"

	"github.com/zoobzio/codable"
)

// Name is a person's name, carried on the wire as one "First Last" string.
// Everything after the first space is the last name, so a middle name ends
// up in Last.
type Name struct {
	First string
	Last  string
}

func (n Name) String() string {
	return codable.JoinPair(n.First, n.Last, " ")
}

// DecodeFrom reads a "First Last" string. A string without two parts fails
// with codable.ErrValueInvalid.
func (n *Name) DecodeFrom(d *codable.Decoder) error {
	c := d.SingleValueContainer()
	s, err := c.DecodeString()
	if err != nil {
		return err
	}
	first, last, ok := codable.SplitPair(s, " ")
	if !ok {
		return codable.Invalid(c.Path(), fmt.Sprintf("name %q needs a first and last part", s))
	}
	n.First, n.Last = first, last
	return nil
}

// EncodeTo writes the name as "First Last".
func (n Name) EncodeTo(e *codable.Encoder) error {
	return e.SingleValueContainer().EncodeString(n.String())
}
