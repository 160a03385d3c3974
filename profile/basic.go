package profile

import (
	"net/url"
	"time"

	"github.com/zoobzio/codable"
)

// BasicProfile is a profile whose name arrives as a {first, last} mapping.
// Its keys come from the struct tags. Key is kept locally and never
// leaves the process.
type BasicProfile struct {
	ID       int64 `codable:"id"`
	Name     map[string]string
	Title    Title
	Email    string
	Address  string
	Phone    []string
	ImageURL *url.URL `codable:"imageurl"`
	Key      []byte   `codable:"-"`
}

var basicKeys = codable.KeysFor[BasicProfile]()

// DecodeFrom reads a basic profile. Key is reset to an empty slice.
func (p *BasicProfile) DecodeFrom(d *codable.Decoder) error {
	c, err := d.KeyedContainer(basicKeys)
	if err != nil {
		return err
	}
	p.Key = []byte{}
	if p.ID, err = c.DecodeInt(basicKeys.Key("ID")); err != nil {
		return err
	}
	if p.Name, err = c.DecodeStringMap(basicKeys.Key("Name")); err != nil {
		return err
	}
	if p.Title, err = titles.Decode(c, basicKeys.Key("Title")); err != nil {
		return err
	}
	if p.Email, err = c.DecodeString(basicKeys.Key("Email")); err != nil {
		return err
	}
	if p.Address, err = c.DecodeString(basicKeys.Key("Address")); err != nil {
		return err
	}
	if p.Phone, err = c.DecodeStrings(basicKeys.Key("Phone")); err != nil {
		return err
	}
	p.ImageURL, err = c.DecodeURL(basicKeys.Key("ImageURL"))
	return err
}

// EncodeTo writes a basic profile.
func (p BasicProfile) EncodeTo(e *codable.Encoder) error {
	c, err := e.KeyedContainer(basicKeys)
	if err != nil {
		return err
	}
	c.EncodeInt(basicKeys.Key("ID"), p.ID)
	c.EncodeStringMap(basicKeys.Key("Name"), p.Name)
	if err := titles.Encode(c, basicKeys.Key("Title"), p.Title); err != nil {
		return err
	}
	c.EncodeString(basicKeys.Key("Email"), p.Email)
	c.EncodeString(basicKeys.Key("Address"), p.Address)
	c.EncodeStrings(basicKeys.Key("Phone"), p.Phone)
	c.EncodeURL(basicKeys.Key("ImageURL"), p.ImageURL)
	return nil
}

var datedKeys = codable.NewKeySet(
	codable.NewKey("ID", "id"),
	codable.NewKey("Name", "name"),
	codable.NewKey("Email", "email"),
	codable.NewKey("Address", "address"),
	codable.NewKey("Phone", "phone"),
	codable.NewKey("DOB", "dob"),
)

// DatedProfile is a profile with a date of birth.
type DatedProfile struct {
	ID      int64
	Name    map[string]string
	Email   string
	Address string
	Phone   []string
	DOB     time.Time
}

// DecodeFrom reads a dated profile. dob must be in codable.DateLayout.
func (p *DatedProfile) DecodeFrom(d *codable.Decoder) error {
	c, err := d.KeyedContainer(datedKeys)
	if err != nil {
		return err
	}
	if p.ID, err = c.DecodeInt(datedKeys.Key("ID")); err != nil {
		return err
	}
	if p.Name, err = c.DecodeStringMap(datedKeys.Key("Name")); err != nil {
		return err
	}
	if p.Email, err = c.DecodeString(datedKeys.Key("Email")); err != nil {
		return err
	}
	if p.Address, err = c.DecodeString(datedKeys.Key("Address")); err != nil {
		return err
	}
	if p.Phone, err = c.DecodeStrings(datedKeys.Key("Phone")); err != nil {
		return err
	}
	p.DOB, err = c.DecodeDate(datedKeys.Key("DOB"))
	return err
}

// EncodeTo writes a dated profile.
func (p DatedProfile) EncodeTo(e *codable.Encoder) error {
	c, err := e.KeyedContainer(datedKeys)
	if err != nil {
		return err
	}
	c.EncodeInt(datedKeys.Key("ID"), p.ID)
	c.EncodeStringMap(datedKeys.Key("Name"), p.Name)
	c.EncodeString(datedKeys.Key("Email"), p.Email)
	c.EncodeString(datedKeys.Key("Address"), p.Address)
	c.EncodeStrings(datedKeys.Key("Phone"), p.Phone)
	c.EncodeDate(datedKeys.Key("DOB"), p.DOB)
	return nil
}
