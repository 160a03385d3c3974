package integration

import (
	"context"
	"testing"

	"github.com/zoobzio/codable"
	"github.com/zoobzio/codable/bson"
	"github.com/zoobzio/codable/codabletest"
	"github.com/zoobzio/codable/msgpack"
	"github.com/zoobzio/codable/profile"
	"github.com/zoobzio/codable/yaml"
)

func TestProcessor_RoundTrip_JSON(t *testing.T) {
	testRoundTrip(t, codable.JSON())
}

func TestProcessor_RoundTrip_YAML(t *testing.T) {
	testRoundTrip(t, yaml.New())
}

func TestProcessor_RoundTrip_MessagePack(t *testing.T) {
	testRoundTrip(t, msgpack.New())
}

func TestProcessor_RoundTrip_BSON(t *testing.T) {
	testRoundTrip(t, bson.New())
}

func testRoundTrip(t *testing.T, f codable.Format) {
	t.Helper()
	codable.Reset()

	t.Run("UserProfile", func(t *testing.T) {
		roundTrip[profile.UserProfile](t, f, codabletest.UserProfile)
	})
	t.Run("InterestedProfile", func(t *testing.T) {
		roundTrip[profile.InterestedProfile](t, f, codabletest.InterestedProfile)
	})
	t.Run("URLImageProfile", func(t *testing.T) {
		roundTrip[profile.ImageProfile](t, f, codabletest.URLImageProfile)
	})
	t.Run("Base64ImageProfile", func(t *testing.T) {
		roundTrip[profile.ImageProfile](t, f, codabletest.Base64ImageProfile)
	})
	t.Run("StudentProfile", func(t *testing.T) {
		roundTrip[profile.StudentProfile](t, f, codabletest.StudentProfile)
	})
	t.Run("EducatedProfile", func(t *testing.T) {
		roundTrip[profile.EducatedProfile](t, f, codabletest.EducatedProfile)
	})
	t.Run("BasicProfile", func(t *testing.T) {
		roundTrip[profile.BasicProfile](t, f, codabletest.BasicProfile)
	})
	t.Run("DatedProfile", func(t *testing.T) {
		roundTrip[profile.DatedProfile](t, f, codabletest.DatedProfile)
	})
	t.Run("Patient", func(t *testing.T) {
		roundTrip[profile.Patient](t, f, codabletest.Patient)
	})
}

// roundTrip decodes doc from JSON, stores it through f, loads it back and
// requires the JSON rendering of both values to match.
func roundTrip[T any, PT codable.CodablePtr[T]](t *testing.T, f codable.Format, doc string) {
	t.Helper()
	ctx := context.Background()

	src := codable.Use[T, PT](codable.CompactJSON())
	proc := codable.Use[T, PT](f)

	original, err := src.Decode(ctx, []byte(doc))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	data, err := proc.Encode(ctx, original)
	if err != nil {
		t.Fatalf("Encode(%s) error: %v", f.ContentType(), err)
	}

	restored, err := proc.Decode(ctx, data)
	if err != nil {
		t.Fatalf("Decode(%s) error: %v", f.ContentType(), err)
	}

	want, _ := src.Encode(ctx, original)
	got, err := src.Encode(ctx, restored)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if string(want) != string(got) {
		t.Errorf("round trip through %s changed the value\nwant: %s\ngot:  %s", f.ContentType(), want, got)
	}
}

func TestTranscode_Chain(t *testing.T) {
	codable.Reset()
	ctx := context.Background()

	chain := []*codable.Processor[profile.Patient, *profile.Patient]{
		codable.Use[profile.Patient](codable.JSON()),
		codable.Use[profile.Patient](yaml.New()),
		codable.Use[profile.Patient](msgpack.New()),
		codable.Use[profile.Patient](bson.New()),
		codable.Use[profile.Patient](codable.JSON()),
	}

	data := []byte(codabletest.Patient)
	for i := 0; i+1 < len(chain); i++ {
		out, err := chain[i].Transcode(ctx, data, chain[i+1])
		if err != nil {
			t.Fatalf("Transcode %s -> %s error: %v", chain[i].ContentType(), chain[i+1].ContentType(), err)
		}
		data = out
	}

	codabletest.RequireEquivalent(t, []byte(codabletest.EncodedPatient), data)

	want := codabletest.MustParse(t, codabletest.EncodedPatient)
	if got := codabletest.MustParse(t, string(data)); !codable.Equal(want, got) {
		t.Errorf("member order changed along the chain:\n%s", data)
	}
}

func TestFingerprint_AcrossFormats(t *testing.T) {
	formats := []codable.Format{yaml.New(), msgpack.New(), bson.New()}
	want := codable.Fingerprint(codabletest.MustParse(t, codabletest.Patient))

	for _, f := range formats {
		data := codabletest.FormatRoundTrip(t, f, codabletest.Patient)
		n, err := f.Unmarshal(data)
		if err != nil {
			t.Fatalf("%s Unmarshal error: %v", f.ContentType(), err)
		}
		if codable.Fingerprint(n) != want {
			t.Errorf("%s changed the fingerprint", f.ContentType())
		}
	}
}

func TestContacts_TopLevelArray(t *testing.T) {
	codable.Reset()
	ctx := context.Background()

	// BSON cannot hold a top-level array
	for _, f := range []codable.Format{codable.JSON(), yaml.New(), msgpack.New()} {
		proc := codable.Use[profile.Contacts](f)
		src := codable.Use[profile.Contacts](codable.JSON())

		cs, err := src.Decode(ctx, []byte(codabletest.Contacts))
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		data, err := proc.Encode(ctx, cs)
		if err != nil {
			t.Fatalf("Encode(%s) error: %v", f.ContentType(), err)
		}
		back, err := proc.Decode(ctx, data)
		if err != nil {
			t.Fatalf("Decode(%s) error: %v", f.ContentType(), err)
		}
		if len(*back) != 2 || (*back)[1].Name != "John Grisham" {
			t.Errorf("%s: got %+v", f.ContentType(), *back)
		}
	}

	_, err := codable.Use[profile.Contacts](bson.New()).Encode(ctx, &profile.Contacts{})
	if err == nil {
		t.Error("BSON Encode of a top-level array should fail")
	}
}
