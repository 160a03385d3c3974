package profile

import (
	"net/url"

	"github.com/zoobzio/codable"
)

var userKeys = codable.NewKeySet(
	codable.NewKey("ImageURL", "imageurl"),
)

// UserProfile is a Profile with a picture URL.
type UserProfile struct {
	Profile  Profile
	ImageURL *url.URL
}

// DecodeFrom reads the base fields and imageurl from one mapping.
func (u *UserProfile) DecodeFrom(d *codable.Decoder) error {
	if err := u.Profile.DecodeFrom(d); err != nil {
		return err
	}
	c, err := d.KeyedContainer(userKeys)
	if err != nil {
		return err
	}
	u.ImageURL, err = c.DecodeURL(userKeys.Key("ImageURL"))
	return err
}

// EncodeTo writes the base fields and imageurl into one mapping.
func (u UserProfile) EncodeTo(e *codable.Encoder) error {
	if err := u.Profile.EncodeTo(e); err != nil {
		return err
	}
	c, err := e.KeyedContainer(userKeys)
	if err != nil {
		return err
	}
	c.EncodeURL(userKeys.Key("ImageURL"), u.ImageURL)
	return nil
}

var (
	interestedKeys = codable.NewKeySet(codable.K("interests"))
	interestKeys   = codable.NewKeySet(
		codable.NewKey("Sports", "sports"),
		codable.NewKey("Music", "music"),
	)
)

// InterestedProfile is a UserProfile whose interests wrapper is flattened
// into Sports and Music.
type InterestedProfile struct {
	User   UserProfile
	Sports []string
	Music  []string
}

// DecodeFrom reads the user fields and lifts interests.sports and
// interests.music.
func (p *InterestedProfile) DecodeFrom(d *codable.Decoder) error {
	if err := p.User.DecodeFrom(d); err != nil {
		return err
	}
	c, err := d.KeyedContainer(interestedKeys)
	if err != nil {
		return err
	}
	return c.Flatten(interestedKeys.Key("interests"), interestKeys, func(in *codable.KeyedContainer) error {
		var err error
		if p.Sports, err = in.DecodeStrings(interestKeys.Key("Sports")); err != nil {
			return err
		}
		p.Music, err = in.DecodeStrings(interestKeys.Key("Music"))
		return err
	})
}

// EncodeTo writes the user fields and re-nests Sports and Music under
// interests.
func (p InterestedProfile) EncodeTo(e *codable.Encoder) error {
	if err := p.User.EncodeTo(e); err != nil {
		return err
	}
	c, err := e.KeyedContainer(interestedKeys)
	if err != nil {
		return err
	}
	return c.Unflatten(interestedKeys.Key("interests"), interestKeys, func(in *codable.KeyedContainer) error {
		in.EncodeStrings(interestKeys.Key("Sports"), p.Sports)
		in.EncodeStrings(interestKeys.Key("Music"), p.Music)
		return nil
	})
}
