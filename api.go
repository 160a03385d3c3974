// Package codable maps schema-free JSON documents onto typed Go values
// through hand-written, bidirectional codecs.
//
// A document is parsed into an ordered tree of Nodes. Domain types read
// that tree through container views and write a new tree the same way:
//
//   - KeyedContainer: members of a mapping, addressed by Key
//   - IndexedContainer: elements of a sequence, read through a cursor
//   - SingleValueContainer: one value with no key
//
// # Codec Contract
//
// A type takes part by implementing DecodeFrom and EncodeTo:
//
//	var userKeys = codable.NewKeySet(
//	    codable.K("id"),
//	    codable.NewKey("ImageURL", "imageurl"),
//	)
//
//	func (u *User) DecodeFrom(d *codable.Decoder) error {
//	    c, err := d.KeyedContainer(userKeys)
//	    if err != nil {
//	        return err
//	    }
//	    if u.ID, err = c.DecodeInt(userKeys.Key("id")); err != nil {
//	        return err
//	    }
//	    u.ImageURL, err = c.DecodeURL(userKeys.Key("ImageURL"))
//	    return err
//	}
//
//	func (u User) EncodeTo(e *codable.Encoder) error {
//	    c, err := e.KeyedContainer(userKeys)
//	    if err != nil {
//	        return err
//	    }
//	    c.EncodeInt(userKeys.Key("id"), u.ID)
//	    c.EncodeURL(userKeys.Key("ImageURL"), u.ImageURL)
//	    return nil
//	}
//
//	user, err := codable.Decode[User](data)
//	out, err := codable.Encode(user)
//
// Nested types are handled by delegating to their own codec through
// KeyedContainer.Decode and KeyedContainer.Encode.
//
// # Transforms
//
// Flatten and Unflatten move members between a wrapper mapping and the
// enclosing type, with Inject for constants that exist only on the wire.
// DecodeSplit and EncodeJoined map "First Last" strings to two fields.
// DecodePairs and EncodePairs map open-ended mappings to ordered Pairs.
// Resolver picks among variant interpretations of one value, and Enum
// validates closed sets of names.
//
// # Errors
//
// Every failure aborts the call and wraps one of ErrParse, ErrShapeMismatch,
// ErrKeyMissing, ErrTypeMismatch, ErrValueInvalid, ErrSequenceExhausted or
// ErrAlreadyWritten, with the coding path where it happened.
//
// # Formats
//
// Processor runs a type through any Format: JSON here, and the yaml,
// msgpack and bson sub-packages for the same tree in other encodings.
package codable
