package msgpack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/codable"
	"github.com/zoobzio/codable/codabletest"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/msgpack", New().ContentType())
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		codabletest.UserProfile,
		codabletest.Contacts,
		codabletest.Patient,
		`{"z":1,"a":[true,null,"x"],"m":{}}`,
		`[0,-1,127,128,-33,65535,4294967296,-9223372036854775808,18446744073709551615]`,
		`[0.5,-2.25,1e300]`,
		`"only a string"`,
	}

	for _, doc := range docs {
		codabletest.FormatRoundTrip(t, New(), doc)
	}
}

func TestMarshal_ReadableByLibrary(t *testing.T) {
	data, err := New().Marshal(codabletest.MustParse(t, `{"id":7,"tags":["a","b"]}`))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &out))
	assert.EqualValues(t, 7, out["id"])
	assert.Equal(t, []any{"a", "b"}, out["tags"])
}

func TestUnmarshal_FromLibrary(t *testing.T) {
	data, err := msgpack.Marshal([]any{int8(-3), uint16(300), float32(0.5), []byte("raw"), nil})
	require.NoError(t, err)

	n, err := New().Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, `[-3,300,0.5,"raw",null]`, string(codable.Marshal(n)))
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := New().Unmarshal([]byte{0x92, 0x01})
	assert.True(t, errors.Is(err, codable.ErrParse), "error = %v", err)

	// map with an integer key
	_, err = New().Unmarshal([]byte{0x81, 0x01, 0x02})
	assert.True(t, errors.Is(err, codable.ErrParse), "error = %v", err)

	_, err = New().Unmarshal(nil)
	assert.Error(t, err)
}
