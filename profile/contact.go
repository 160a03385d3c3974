package profile

import "github.com/zoobzio/codable"

var contactKeys = codable.NewKeySet(
	codable.NewKey("ID", "id"),
	codable.NewKey("Name", "name"),
	codable.NewKey("Email", "email"),
	codable.NewKey("Phone", "phone"),
)

// Contact is the short form of a profile used in lists.
type Contact struct {
	ID    int64
	Name  string
	Email string
	Phone []string
}

// DecodeFrom reads a contact mapping.
func (c *Contact) DecodeFrom(d *codable.Decoder) error {
	kc, err := d.KeyedContainer(contactKeys)
	if err != nil {
		return err
	}
	if c.ID, err = kc.DecodeInt(contactKeys.Key("ID")); err != nil {
		return err
	}
	if c.Name, err = kc.DecodeString(contactKeys.Key("Name")); err != nil {
		return err
	}
	if c.Email, err = kc.DecodeString(contactKeys.Key("Email")); err != nil {
		return err
	}
	c.Phone, err = kc.DecodeStrings(contactKeys.Key("Phone"))
	return err
}

// EncodeTo writes a contact mapping.
func (c Contact) EncodeTo(e *codable.Encoder) error {
	kc, err := e.KeyedContainer(contactKeys)
	if err != nil {
		return err
	}
	kc.EncodeInt(contactKeys.Key("ID"), c.ID)
	kc.EncodeString(contactKeys.Key("Name"), c.Name)
	kc.EncodeString(contactKeys.Key("Email"), c.Email)
	kc.EncodeStrings(contactKeys.Key("Phone"), c.Phone)
	return nil
}

// Contacts is a top-level array of contacts.
type Contacts []Contact

// DecodeFrom reads every element of the array in order.
func (cs *Contacts) DecodeFrom(d *codable.Decoder) error {
	ic, err := d.IndexedContainer()
	if err != nil {
		return err
	}
	out := make(Contacts, 0, ic.Count())
	for !ic.IsAtEnd() {
		var c Contact
		if err := ic.DecodeNext(&c); err != nil {
			return err
		}
		out = append(out, c)
	}
	*cs = out
	return nil
}

// EncodeTo writes the contacts as an array.
func (cs Contacts) EncodeTo(e *codable.Encoder) error {
	ic, err := e.IndexedContainer()
	if err != nil {
		return err
	}
	return codable.EncodeAll(ic, cs)
}
