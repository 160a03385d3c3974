package profile

import (
	"net/url"

	"github.com/zoobzio/codable"
)

// ImageKind says which form an Image holds.
type ImageKind int

const (
	ImageURL ImageKind = iota
	ImageBase64
)

// Image is a picture given either as a URL or as base64-encoded data.
// Both travel as a plain string.
type Image struct {
	Kind   ImageKind
	URL    *url.URL
	Base64 string
}

// URLImage returns an Image pointing at u.
func URLImage(u *url.URL) Image {
	return Image{Kind: ImageURL, URL: u}
}

// Base64Image returns an Image holding encoded data.
func Base64Image(data string) Image {
	return Image{Kind: ImageBase64, Base64: data}
}

// images tries the URL form first. Any other string is taken as base64,
// and a non-string falls back to empty base64 data.
var images = codable.NewResolver("Image",
	codable.StringCandidate("url", func(s string) (Image, bool) {
		u, ok := codable.ParseAbsoluteURL(s)
		if !ok {
			return Image{}, false
		}
		return URLImage(u), true
	}),
	codable.StringCandidate("base64", func(s string) (Image, bool) {
		return Base64Image(s), true
	}),
).WithFallback(func(*codable.Node) Image {
	return Base64Image("")
})

// DecodeFrom resolves the string into one of the Image forms.
func (i *Image) DecodeFrom(d *codable.Decoder) error {
	img, _, err := images.Resolve(d.SingleValueContainer())
	if err != nil {
		return err
	}
	*i = img
	return nil
}

// EncodeTo writes the held form as a string.
func (i Image) EncodeTo(e *codable.Encoder) error {
	c := e.SingleValueContainer()
	if i.Kind == ImageURL && i.URL != nil {
		return c.EncodeString(i.URL.String())
	}
	return c.EncodeString(i.Base64)
}

var imageProfileKeys = codable.NewKeySet(
	codable.NewKey("Image", "image"),
)

// ImageProfile is a Profile with an Image.
type ImageProfile struct {
	Profile Profile
	Image   Image
}

// DecodeFrom reads the base fields and image from one mapping.
func (p *ImageProfile) DecodeFrom(d *codable.Decoder) error {
	if err := p.Profile.DecodeFrom(d); err != nil {
		return err
	}
	c, err := d.KeyedContainer(imageProfileKeys)
	if err != nil {
		return err
	}
	return c.Decode(imageProfileKeys.Key("Image"), &p.Image)
}

// EncodeTo writes the base fields and image into one mapping.
func (p ImageProfile) EncodeTo(e *codable.Encoder) error {
	if err := p.Profile.EncodeTo(e); err != nil {
		return err
	}
	c, err := e.KeyedContainer(imageProfileKeys)
	if err != nil {
		return err
	}
	return c.Encode(imageProfileKeys.Key("Image"), p.Image)
}
