package profile

import "github.com/zoobzio/codable"

var profileKeys = codable.NewKeySet(
	codable.NewKey("ID", "id"),
	codable.NewKey("Name", "name"),
	codable.NewKey("Title", "title"),
	codable.NewKey("Email", "email"),
	codable.NewKey("Phone", "phone"),
)

// Profile is the base user profile.
type Profile struct {
	ID    int64
	Name  Name
	Title Title
	Email string
	Phone []string
}

// DecodeFrom reads the base fields from a mapping.
func (p *Profile) DecodeFrom(d *codable.Decoder) error {
	c, err := d.KeyedContainer(profileKeys)
	if err != nil {
		return err
	}
	if p.ID, err = c.DecodeInt(profileKeys.Key("ID")); err != nil {
		return err
	}
	if err = c.Decode(profileKeys.Key("Name"), &p.Name); err != nil {
		return err
	}
	if p.Title, err = titles.Decode(c, profileKeys.Key("Title")); err != nil {
		return err
	}
	if p.Email, err = c.DecodeString(profileKeys.Key("Email")); err != nil {
		return err
	}
	p.Phone, err = c.DecodeStrings(profileKeys.Key("Phone"))
	return err
}

// EncodeTo writes the base fields into a mapping.
func (p Profile) EncodeTo(e *codable.Encoder) error {
	c, err := e.KeyedContainer(profileKeys)
	if err != nil {
		return err
	}
	c.EncodeInt(profileKeys.Key("ID"), p.ID)
	if err := c.Encode(profileKeys.Key("Name"), p.Name); err != nil {
		return err
	}
	if err := titles.Encode(c, profileKeys.Key("Title"), p.Title); err != nil {
		return err
	}
	c.EncodeString(profileKeys.Key("Email"), p.Email)
	c.EncodeStrings(profileKeys.Key("Phone"), p.Phone)
	return nil
}
