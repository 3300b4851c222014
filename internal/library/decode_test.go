package library

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Array(t *testing.T) {
	body := []byte(`[{"ID": 3, "name": "A"}, "stray", {"name": "B"}]`)

	raws, err := Decode(body)
	require.NoError(t, err)
	require.Len(t, raws, 3)

	assert.Equal(t, json.Number("3"), raws[0]["ID"])
	assert.Nil(t, raws[1])
	assert.Equal(t, "B", raws[2]["name"])
}

func TestDecode_EmptyArray(t *testing.T) {
	raws, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestDecode_InvalidJSON(t *testing.T) {
	bodies := []string{
		``, `[{"name": "A"`, `not json`, `[] trailing`,
		`[01]`, `[1.]`, `[-]`, `[1e]`,
		`[{"ID": 01, "name": "A", "download": "a.jar", "filename": "a.jar", "version": 2.}]`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := Decode([]byte(body))
			require.ErrorIs(t, err, ErrInvalidJSON)
			assert.NotEqual(t, ErrInvalidJSON.Error(), err.Error(), "underlying parse error should be included")
		})
	}
}

func TestDecode_NotArray(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`: "object",
		`"text"`:  "string",
		`42`:      "number",
		`null`:    "null",
		`true`:    "boolean",
	}

	for body, kind := range tests {
		t.Run(body, func(t *testing.T) {
			_, err := Decode([]byte(body))
			require.ErrorIs(t, err, ErrNotArray)
			assert.Contains(t, err.Error(), "expected an array")
			assert.Contains(t, err.Error(), kind)
		})
	}
}
