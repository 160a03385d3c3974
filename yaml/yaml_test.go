package yaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/codable"
	"github.com/zoobzio/codable/codabletest"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/yaml", New().ContentType())
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		codabletest.UserProfile,
		codabletest.InterestedProfile,
		codabletest.Patient,
		`{"z":1,"a":[true,null,"x"],"m":{}}`,
		`["true","null","1","",-2.5]`,
		`[]`,
	}

	for _, doc := range docs {
		codabletest.FormatRoundTrip(t, New(), doc)
	}
}

func TestMarshal_KeepsOrder(t *testing.T) {
	data, err := New().Marshal(codabletest.MustParse(t, `{"z":1,"a":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "z: 1\na: x\n", string(data))
}

func TestMarshal_QuotesAmbiguousStrings(t *testing.T) {
	data, err := New().Marshal(codabletest.MustParse(t, `{"flag":"true","n":"1"}`))
	require.NoError(t, err)

	n, err := New().Unmarshal(data)
	require.NoError(t, err)
	flag, _ := n.Get("flag")
	assert.Equal(t, codable.KindString, flag.Kind(), "yaml: %s", data)
}

func TestUnmarshal(t *testing.T) {
	doc := `
id: 7
name: Leanne Graham
phone:
  - 555-736-8031
ratio: 0.5
active: yes
none: ~
`
	n, err := New().Unmarshal([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "phone", "ratio", "active", "none"}, n.Keys())
	id, _ := n.Get("id")
	i, ok := id.AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)

	none, _ := n.Get("none")
	assert.True(t, none.IsNull())

	// yaml 1.2 core schema: "yes" is a string
	active, _ := n.Get("active")
	assert.Equal(t, codable.KindString, active.Kind())
}

func TestUnmarshal_Alias(t *testing.T) {
	n, err := New().Unmarshal([]byte("base: &b {x: 1}\ncopy: *b\n"))
	require.NoError(t, err)

	base, _ := n.Get("base")
	cp, _ := n.Get("copy")
	assert.True(t, codable.Equal(base, cp))
}

func TestUnmarshal_Empty(t *testing.T) {
	n, err := New().Unmarshal(nil)
	require.NoError(t, err)
	assert.True(t, n.IsNull())
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := New().Unmarshal([]byte("a: [1, 2\n"))
	assert.True(t, errors.Is(err, codable.ErrParse), "error = %v", err)

	_, err = New().Unmarshal([]byte("? [a, b]\n: 1\n"))
	assert.True(t, errors.Is(err, codable.ErrUnsupported), "error = %v", err)

	_, err = New().Unmarshal([]byte("x: .inf\n"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no JSON form"), "error = %v", err)
}
