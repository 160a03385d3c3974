package profile_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/codable"
	"github.com/zoobzio/codable/bson"
	"github.com/zoobzio/codable/codabletest"
	"github.com/zoobzio/codable/msgpack"
	"github.com/zoobzio/codable/profile"
	"github.com/zoobzio/codable/yaml"
)

func TestPatient_Decode(t *testing.T) {
	p, err := codable.Decode[profile.Patient]([]byte(codabletest.Patient))
	require.NoError(t, err)

	assert.Equal(t, "0f62b5cb-3735-45f6-8ee9-deaeee7f308a", p.ID)
	id, err := p.UUID()
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("0f62b5cb-3735-45f6-8ee9-deaeee7f308a"), id)
	assert.Equal(t, "1987-01-01", p.BirthDate)
	assert.Equal(t, []profile.HumanName{{Given: []string{"Perry"}, Family: []string{"Krug"}}}, p.Names)
	assert.Equal(t, profile.GenderMale, p.Gender)
	assert.Equal(t, "25 Cliveden Pl, Belgravia, London SW1W 8HD, UK", p.Address)
	assert.Equal(t, []codable.Pair{
		{Key: "Hello", Value: "World!"},
		{Key: "music", Value: "Acid Jazz"},
	}, p.Extensions)
}

func TestPatient_Encode(t *testing.T) {
	p, err := codable.Decode[profile.Patient]([]byte(codabletest.Patient))
	require.NoError(t, err)

	out, err := codable.Encode(p)
	require.NoError(t, err)

	want := codabletest.MustParse(t, codabletest.EncodedPatient)
	got := codabletest.MustParse(t, string(out))
	assert.True(t, codable.Equal(want, got), "encoded:\n%s", out)
}

func TestPatient_NoExtension(t *testing.T) {
	doc := `{"id":"0f62b5cb-3735-45f6-8ee9-deaeee7f308a","birthDate":"1987-01-01","name":[],` +
		`"gender":{"text":"Female"},"address":{"text":"x"}}`

	p, err := codable.Decode[profile.Patient]([]byte(doc))
	require.NoError(t, err)
	assert.NotNil(t, p.Extensions)
	assert.Empty(t, p.Extensions)
	assert.Equal(t, profile.GenderFemale, p.Gender)

	n, err := codable.EncodeNode(p)
	require.NoError(t, err)
	ext, ok := n.Get("extension")
	require.True(t, ok)
	assert.Equal(t, codable.KindMapping, ext.Kind())
	assert.Equal(t, 0, ext.Len())
}

func TestPatient_IDText(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		isUUID bool
	}{
		{"plain", "1002889", false},
		{"upper case uuid", "0F62B5CB-3735-45F6-8EE9-DEAEEE7F308A", true},
		{"lower case uuid", "0f62b5cb-3735-45f6-8ee9-deaeee7f308a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(codabletest.Patient, "0f62b5cb-3735-45f6-8ee9-deaeee7f308a", tt.id, 1)

			p, err := codable.Decode[profile.Patient]([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tt.id, p.ID)

			_, err = p.UUID()
			assert.Equal(t, tt.isUUID, err == nil, "UUID() error = %v", err)

			n, err := codable.EncodeNode(p)
			require.NoError(t, err)
			id, ok := n.Get("id")
			require.True(t, ok)
			s, _ := id.AsString()
			assert.Equal(t, tt.id, s)
		})
	}
}

func TestPatient_Rejects(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want error
		path string
	}{
		{"numeric id", `"0f62b5cb-3735-45f6-8ee9-deaeee7f308a"`, `1002889`, codable.ErrTypeMismatch, "id"},
		{"unknown gender", `"Male"`, `"Robot"`, codable.ErrValueInvalid, "gender.text"},
		{"gender not wrapped", `{
    "text": "Male"
  }`, `"Male"`, codable.ErrShapeMismatch, "gender"},
		{"non-string extension", `"World!"`, `true`, codable.ErrTypeMismatch, "extension.Hello"},
		{"given not a list", `"given": ["Perry"]`, `"given": "Perry"`, codable.ErrTypeMismatch, "name[0].given"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(codabletest.Patient, tt.from, tt.to, 1)
			require.NotEqual(t, codabletest.Patient, doc, "replacement did not apply")

			_, err := codable.Decode[profile.Patient]([]byte(doc))
			assert.True(t, errors.Is(err, tt.want), "error = %v", err)

			var pe *codable.PathError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.path, pe.Path)
		})
	}
}

func TestPatient_NoPartialResult(t *testing.T) {
	p := profile.NewPatient(uuid.NewString())
	p.Address = "kept"
	before := p

	bad := strings.Replace(codabletest.Patient, `"Male"`, `"Robot"`, 1)
	root := codabletest.MustParse(t, bad)
	err := p.DecodeFrom(codable.NewDecoder(root))
	require.Error(t, err)
	assert.Equal(t, before, p)
}

func TestPatient_Formats(t *testing.T) {
	formats := []codable.Format{codable.CompactJSON(), yaml.New(), msgpack.New(), bson.New()}
	want, err := codable.Decode[profile.Patient]([]byte(codabletest.Patient))
	require.NoError(t, err)

	for _, f := range formats {
		t.Run(f.ContentType(), func(t *testing.T) {
			p := codable.NewProcessor[profile.Patient](codable.WithFormat(f))

			data, err := p.Encode(context.Background(), &want)
			require.NoError(t, err)

			got, err := p.Decode(context.Background(), data)
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestPatient_Transcode(t *testing.T) {
	codable.Reset()
	fromJSON := codable.Use[profile.Patient](codable.JSON())
	toYAML := codable.Use[profile.Patient](yaml.New())

	out, err := fromJSON.Transcode(context.Background(), []byte(codabletest.Patient), toYAML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "id: 0f62b5cb-3735-45f6-8ee9-deaeee7f308a\n"), "yaml:\n%s", out)
	assert.NotContains(t, string(out), "active")
}
