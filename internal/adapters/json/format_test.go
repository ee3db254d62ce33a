package json

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/tokenfiles/internal/ports"
)

func testDictionary() *ports.Dictionary {
	return &ports.Dictionary{
		Properties: map[string]any{
			"color": map[string]any{"red": map[string]any{"value": "#FF0000"}},
			"size":  map[string]any{"sm": "4px"},
		},
		AllProperties: []ports.Token{
			{Name: "color-red", Category: "color", Value: "#FF0000"},
			{Name: "size-sm", Category: "size", Value: "4px"},
		},
	}
}

func TestNested(t *testing.T) {
	spec := ports.NewFileSpec("tokens.json", nil, Nested)
	out, err := Nested(spec, &ports.PlatformConfig{}, testDictionary())
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":{"red":{"value":"#FF0000"}},"size":{"sm":"4px"}}`, string(out))
}

func TestNested_Category(t *testing.T) {
	spec := ports.NewFileSpec("size.json", nil, Nested)
	spec.Options["category"] = "size"
	out, err := Nested(spec, &ports.PlatformConfig{}, testDictionary())
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":{"sm":"4px"}}`, string(out))

	spec.Options["category"] = "motion"
	_, err = Nested(spec, &ports.PlatformConfig{}, testDictionary())
	assert.ErrorContains(t, err, "category 'motion' not found")
}

func TestFlat(t *testing.T) {
	spec := ports.NewFileSpec("flat.json", nil, Flat)
	out, err := Flat(spec, &ports.PlatformConfig{}, testDictionary())
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, map[string]string{"color-red": "#FF0000", "size-sm": "4px"}, got)
}
