package profile

import (
	"github.com/google/uuid"
	"github.com/zoobzio/codable"
)

// Gender of a patient. On the wire it is nested as {"text": "Male"}.
type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

var genders = codable.NewEnum("Gender",
	codable.Case[Gender]{Symbol: GenderMale, Name: "Male"},
	codable.Case[Gender]{Symbol: GenderFemale, Name: "Female"},
	codable.Case[Gender]{Symbol: GenderOther, Name: "Other"},
	codable.Case[Gender]{Symbol: GenderUnspecified, Name: "Unspecified"},
)

func (g Gender) String() string {
	if s, ok := genders.Name(g); ok {
		return s
	}
	return "invalid"
}

var humanNameKeys = codable.NewKeySet(
	codable.NewKey("Family", "family"),
	codable.NewKey("Given", "given"),
)

// HumanName is one of a patient's names.
type HumanName struct {
	Given  []string
	Family []string
}

// DecodeFrom reads a {given, family} mapping.
func (n *HumanName) DecodeFrom(d *codable.Decoder) error {
	c, err := d.KeyedContainer(humanNameKeys)
	if err != nil {
		return err
	}
	if n.Given, err = c.DecodeStrings(humanNameKeys.Key("Given")); err != nil {
		return err
	}
	n.Family, err = c.DecodeStrings(humanNameKeys.Key("Family"))
	return err
}

// EncodeTo writes a {family, given} mapping.
func (n HumanName) EncodeTo(e *codable.Encoder) error {
	c, err := e.KeyedContainer(humanNameKeys)
	if err != nil {
		return err
	}
	c.EncodeStrings(humanNameKeys.Key("Family"), n.Family)
	c.EncodeStrings(humanNameKeys.Key("Given"), n.Given)
	return nil
}

var (
	patientKeys = codable.NewKeySet(
		codable.NewKey("ID", "id"),
		codable.NewKey("BirthDate", "birthDate"),
		codable.NewKey("Names", "name"),
		codable.NewKey("Gender", "gender"),
		codable.NewKey("Address", "address"),
		codable.NewKey("Extensions", "extension"),
	)
	genderKeys  = codable.NewKeySet(codable.K("text"))
	addressKeys = codable.NewKeySet(
		codable.K("resourceType"),
		codable.K("text"),
	)
)

// addressResourceType is written into the address wrapper on encode.
const addressResourceType = "Address"

// Patient is a subset of a patient resource with the wrappers removed:
// gender and address are lifted out of their nested mappings, and the
// open-ended extension mapping becomes an ordered list of pairs.
type Patient struct {
	ID         string
	BirthDate  string
	Names      []HumanName
	Gender     Gender
	Address    string
	Extensions []codable.Pair
}

// NewPatient returns a Patient with no extensions.
func NewPatient(id string) Patient {
	return Patient{ID: id, Extensions: []codable.Pair{}}
}

// UUID parses the patient id as a UUID. Ids are free-form text on the wire,
// so callers that need a UUID check the error.
func (p Patient) UUID() (uuid.UUID, error) {
	return uuid.Parse(p.ID)
}

// DecodeFrom reads a patient resource. Members other than the ones held
// by Patient are ignored; a missing extension member leaves Extensions empty.
func (p *Patient) DecodeFrom(d *codable.Decoder) error {
	c, err := d.KeyedContainer(patientKeys)
	if err != nil {
		return err
	}
	out := NewPatient("")
	if out.ID, err = c.DecodeString(patientKeys.Key("ID")); err != nil {
		return err
	}
	if out.BirthDate, err = c.DecodeString(patientKeys.Key("BirthDate")); err != nil {
		return err
	}
	if out.Names, err = codable.DecodeEach[HumanName](c, patientKeys.Key("Names")); err != nil {
		return err
	}
	err = c.Flatten(patientKeys.Key("Gender"), genderKeys, func(g *codable.KeyedContainer) error {
		var err error
		out.Gender, err = genders.Decode(g, genderKeys.Key("text"))
		return err
	})
	if err != nil {
		return err
	}
	err = c.Flatten(patientKeys.Key("Address"), addressKeys, func(a *codable.KeyedContainer) error {
		var err error
		out.Address, err = a.DecodeString(addressKeys.Key("text"))
		return err
	})
	if err != nil {
		return err
	}
	if c.Contains(patientKeys.Key("Extensions")) {
		if out.Extensions, err = c.DecodePairs(patientKeys.Key("Extensions")); err != nil {
			return err
		}
	}
	*p = out
	return nil
}

// EncodeTo writes a patient resource, re-creating the gender and address
// wrappers and marking the address with its resource type.
func (p Patient) EncodeTo(e *codable.Encoder) error {
	c, err := e.KeyedContainer(patientKeys)
	if err != nil {
		return err
	}
	c.EncodeString(patientKeys.Key("ID"), p.ID)
	c.EncodeString(patientKeys.Key("BirthDate"), p.BirthDate)
	if err := codable.EncodeEach(c, patientKeys.Key("Names"), p.Names); err != nil {
		return err
	}
	err = c.Unflatten(patientKeys.Key("Gender"), genderKeys, func(g *codable.KeyedContainer) error {
		return genders.Encode(g, genderKeys.Key("text"), p.Gender)
	})
	if err != nil {
		return err
	}
	err = c.Unflatten(patientKeys.Key("Address"), addressKeys, func(a *codable.KeyedContainer) error {
		a.EncodeString(addressKeys.Key("text"), p.Address)
		return nil
	}, codable.Inject(addressKeys.Key("resourceType"), codable.String(addressResourceType)))
	if err != nil {
		return err
	}
	c.EncodePairs(patientKeys.Key("Extensions"), p.Extensions)
	return nil
}
