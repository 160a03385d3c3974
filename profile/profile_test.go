package profile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/codable"
	"github.com/zoobzio/codable/codabletest"
	"github.com/zoobzio/codable/profile"
)

func TestUserProfile_RoundTrip(t *testing.T) {
	u := codabletest.RoundTrip[profile.UserProfile](t, codabletest.UserProfile)

	assert.Equal(t, int64(1002889), u.Profile.ID)
	assert.Equal(t, profile.Name{First: "Leanne", Last: "Graham"}, u.Profile.Name)
	assert.Equal(t, profile.TitleQA, u.Profile.Title)
	assert.Equal(t, "Sincere@april.biz", u.Profile.Email)
	assert.Equal(t, []string{"555-736-8031", "555-8933"}, u.Profile.Phone)
	require.NotNil(t, u.ImageURL)
	assert.Equal(t, "example.com", u.ImageURL.Host)
}

func TestUserProfile_WireNames(t *testing.T) {
	u, err := codable.Decode[profile.UserProfile]([]byte(codabletest.UserProfile))
	require.NoError(t, err)

	n, err := codable.EncodeNode(u)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "title", "email", "phone", "imageurl"}, n.Keys())
}

func TestUserProfile_Rejects(t *testing.T) {
	tests := []struct {
		name string
		edit func(string) string
		want error
		path string
	}{
		{
			name: "unknown title",
			edit: func(s string) string { return strings.Replace(s, `"qa"`, `"director"`, 1) },
			want: codable.ErrValueInvalid,
			path: "title",
		},
		{
			name: "single word name",
			edit: func(s string) string { return strings.Replace(s, `"Leanne Graham"`, `"Leanne"`, 1) },
			want: codable.ErrValueInvalid,
			path: "name",
		},
		{
			name: "relative image url",
			edit: func(s string) string {
				return strings.Replace(s, `"https://example.com/profile.png"`, `"profile.png"`, 1)
			},
			want: codable.ErrValueInvalid,
			path: "imageurl",
		},
		{
			name: "renamed key under field name",
			edit: func(s string) string { return strings.Replace(s, `"imageurl"`, `"ImageURL"`, 1) },
			want: codable.ErrKeyMissing,
			path: "imageurl",
		},
		{
			name: "phone not a list",
			edit: func(s string) string {
				return strings.Replace(s, `["555-736-8031", "555-8933"]`, `"555-736-8031"`, 1)
			},
			want: codable.ErrTypeMismatch,
			path: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := codable.Decode[profile.UserProfile]([]byte(tt.edit(codabletest.UserProfile)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "error = %v", err)

			var pe *codable.PathError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.path, pe.Path)
			assert.Equal(t, profile.UserProfile{}, u)
		})
	}
}

func TestName(t *testing.T) {
	n, err := codable.Decode[profile.Name]([]byte(`"Mary Ann Smith"`))
	require.NoError(t, err)
	assert.Equal(t, "Mary", n.First)
	assert.Equal(t, "Ann Smith", n.Last)
	assert.Equal(t, "Mary Ann Smith", n.String())

	_, err = codable.Decode[profile.Name]([]byte(`"   "`))
	assert.True(t, errors.Is(err, codable.ErrValueInvalid), "error = %v", err)
}

func TestTitle(t *testing.T) {
	for _, name := range []string{"engineer", "manager", "support", "qa"} {
		title, ok := profile.ParseTitle(name)
		require.True(t, ok, name)
		assert.Equal(t, name, title.String())
	}
	_, ok := profile.ParseTitle("director")
	assert.False(t, ok)
	assert.Equal(t, "invalid", profile.Title(0).String())
}

func TestProfile_EncodeInvalidTitle(t *testing.T) {
	_, err := codable.Encode(profile.Profile{ID: 1, Name: profile.Name{First: "A", Last: "B"}})
	assert.True(t, errors.Is(err, codable.ErrValueInvalid), "error = %v", err)
}

func TestInterestedProfile_Flatten(t *testing.T) {
	p := codabletest.RoundTrip[profile.InterestedProfile](t, codabletest.InterestedProfile)

	assert.Equal(t, []string{"football", "baseball"}, p.Sports)
	assert.Equal(t, []string{"violin", "classical"}, p.Music)
	assert.Equal(t, "hildegard.org", p.User.ImageURL.Host)

	n, err := codable.EncodeNode(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "title", "email", "phone", "imageurl", "interests"}, n.Keys())
	interests, ok := n.Get("interests")
	require.True(t, ok)
	assert.Equal(t, []string{"sports", "music"}, interests.Keys())
}

func TestInterestedProfile_MissingWrapper(t *testing.T) {
	_, err := codable.Decode[profile.InterestedProfile]([]byte(codabletest.UserProfile))
	assert.True(t, errors.Is(err, codable.ErrKeyMissing), "error = %v", err)
}

func TestStudentProfile_RoundTrip(t *testing.T) {
	s := codabletest.RoundTrip[profile.StudentProfile](t, codabletest.StudentProfile)
	assert.Equal(t, "RPI", s.University)
	assert.Equal(t, "Leanne", s.Profile.Name.First)
}

func TestEducatedProfile(t *testing.T) {
	p := codabletest.RoundTrip[profile.EducatedProfile](t, codabletest.EducatedProfile)

	assert.Equal(t, []profile.Education{
		{School: "RPI", Graduation: "01/01/2000"},
		{School: "UMich", Graduation: "09/01/1998"},
	}, p.Education)
}

func TestEducation_Arity(t *testing.T) {
	for _, doc := range []string{`{}`, `{"RPI":"01/01/2000","MIT":"01/01/2001"}`} {
		_, err := codable.Decode[profile.Education]([]byte(doc))
		assert.True(t, errors.Is(err, codable.ErrValueInvalid), "%s: error = %v", doc, err)
	}

	bad := strings.Replace(codabletest.EducatedProfile, `{"UMich": "09/01/1998"}`, `{}`, 1)
	_, err := codable.Decode[profile.EducatedProfile]([]byte(bad))
	var pe *codable.PathError
	require.True(t, errors.As(err, &pe), "error = %v", err)
	assert.Equal(t, "education[1]", pe.Path)
}

func TestContacts(t *testing.T) {
	cs := codabletest.RoundTrip[profile.Contacts](t, codabletest.Contacts)

	require.Len(t, cs, 2)
	assert.Equal(t, "Leanne Graham", cs[0].Name)
	assert.Equal(t, int64(1009009), cs[1].ID)

	empty, err := codable.Decode[profile.Contacts]([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	_, err = codable.Decode[profile.Contacts]([]byte(`{"id":1}`))
	assert.True(t, errors.Is(err, codable.ErrShapeMismatch), "error = %v", err)
}

func TestBasicProfile(t *testing.T) {
	p := codabletest.RoundTrip[profile.BasicProfile](t, codabletest.BasicProfile)

	assert.Equal(t, map[string]string{"first": "Leanne", "last": "Graham"}, p.Name)
	assert.Equal(t, "101, Main street", p.Address)
	assert.Equal(t, profile.TitleQA, p.Title)
	assert.NotNil(t, p.Key)
	assert.Empty(t, p.Key)

	p.Key = []byte("secret")
	n, err := codable.EncodeNode(p)
	require.NoError(t, err)
	_, leaked := n.Get("key")
	assert.False(t, leaked, "Key must not be written")
}

func TestDatedProfile(t *testing.T) {
	p := codabletest.RoundTrip[profile.DatedProfile](t, codabletest.DatedProfile)
	assert.Equal(t, "2017-11-12T20:06:28Z", p.DOB.UTC().Format("2006-01-02T15:04:05Z07:00"))

	out, err := codable.Encode(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"dob": "2017-11-12T20:06:28+00:00"`)

	bad := strings.Replace(codabletest.DatedProfile, "+00:00", "Z", 1)
	_, err = codable.Decode[profile.DatedProfile]([]byte(bad))
	assert.True(t, errors.Is(err, codable.ErrValueInvalid), "error = %v", err)
}
