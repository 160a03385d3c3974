package profile

import (
	"fmt"

	"github.com/zoobzio/codable"
)

var studentKeys = codable.NewKeySet(
	codable.NewKey("University", "university"),
)

// StudentProfile is a Profile with a university.
type StudentProfile struct {
	Profile    Profile
	University string
}

// DecodeFrom reads the base fields and university from one mapping.
func (s *StudentProfile) DecodeFrom(d *codable.Decoder) error {
	if err := s.Profile.DecodeFrom(d); err != nil {
		return err
	}
	c, err := d.KeyedContainer(studentKeys)
	if err != nil {
		return err
	}
	s.University, err = c.DecodeString(studentKeys.Key("University"))
	return err
}

// EncodeTo writes the base fields and university into one mapping.
func (s StudentProfile) EncodeTo(e *codable.Encoder) error {
	if err := s.Profile.EncodeTo(e); err != nil {
		return err
	}
	c, err := e.KeyedContainer(studentKeys)
	if err != nil {
		return err
	}
	c.EncodeString(studentKeys.Key("University"), s.University)
	return nil
}

// Education is one school attended. On the wire it is a single-member
// mapping from school name to graduation date, e.g. {"RPI":"01/01/2000"}.
type Education struct {
	School     string
	Graduation string
}

// DecodeFrom reads the one member of the mapping. Mappings with no member
// or with several fail with codable.ErrValueInvalid.
func (ed *Education) DecodeFrom(d *codable.Decoder) error {
	c, err := d.KeyedContainer(nil)
	if err != nil {
		return err
	}
	keys := c.AllKeys()
	if len(keys) != 1 {
		return codable.Invalid(c.Path(), fmt.Sprintf("education needs exactly one school, found %d", len(keys)))
	}
	ed.School = keys[0].Wire()
	ed.Graduation, err = c.DecodeString(keys[0])
	return err
}

// EncodeTo writes {School: Graduation}.
func (ed Education) EncodeTo(e *codable.Encoder) error {
	c, err := e.KeyedContainer(nil)
	if err != nil {
		return err
	}
	c.EncodeString(codable.DynamicKey(ed.School), ed.Graduation)
	return nil
}

var educatedKeys = codable.NewKeySet(
	codable.NewKey("Education", "education"),
)

// EducatedProfile is a Profile with a list of schools.
type EducatedProfile struct {
	Profile   Profile
	Education []Education
}

// DecodeFrom reads the base fields and education from one mapping.
func (p *EducatedProfile) DecodeFrom(d *codable.Decoder) error {
	if err := p.Profile.DecodeFrom(d); err != nil {
		return err
	}
	c, err := d.KeyedContainer(educatedKeys)
	if err != nil {
		return err
	}
	p.Education, err = codable.DecodeEach[Education](c, educatedKeys.Key("Education"))
	return err
}

// EncodeTo writes the base fields and education into one mapping.
func (p EducatedProfile) EncodeTo(e *codable.Encoder) error {
	if err := p.Profile.EncodeTo(e); err != nil {
		return err
	}
	c, err := e.KeyedContainer(educatedKeys)
	if err != nil {
		return err
	}
	return codable.EncodeEach(c, educatedKeys.Key("Education"), p.Education)
}
