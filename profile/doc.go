// Package profile holds user-profile documents and their codecs.
//
// The types share one base, Profile, and extend it by composition: an
// extended type decodes and encodes the base fields and its own fields
// through the same flat mapping.
package profile
