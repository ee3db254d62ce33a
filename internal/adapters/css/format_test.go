package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/tokenfiles/internal/ports"
)

func testDictionary() *ports.Dictionary {
	return &ports.Dictionary{AllProperties: []ports.Token{
		{Name: "color-red", Category: "color", Value: "#FF0000", Comment: "alert"},
		{Name: "size-sm", Category: "size", Value: "4px"},
	}}
}

func TestVariables(t *testing.T) {
	spec := ports.NewFileSpec("variables.css", nil, Variables)
	spec.Options["showFileHeader"] = "false"

	out, err := Variables(spec, &ports.PlatformConfig{}, testDictionary())
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --color-red: #FF0000; /* alert */\n  --size-sm: 4px;\n}\n", string(out))
}

func TestVariables_SelectorCategoryAndHeader(t *testing.T) {
	spec := ports.NewFileSpec("dark.css", nil, Variables)
	spec.Options["selector"] = ".dark"
	spec.Options["category"] = "size"

	out, err := Variables(spec, &ports.PlatformConfig{}, testDictionary())
	require.NoError(t, err)
	assert.Contains(t, string(out), "Do not edit directly")
	assert.Contains(t, string(out), ".dark {\n  --size-sm: 4px;\n}\n")
	assert.NotContains(t, string(out), "color-red")
}

func TestScssVariables(t *testing.T) {
	spec := ports.NewFileSpec("_variables.scss", nil, ScssVariables)
	spec.Options["showFileHeader"] = "false"

	out, err := ScssVariables(spec, &ports.PlatformConfig{}, testDictionary())
	require.NoError(t, err)
	assert.Equal(t, "$color-red: #FF0000; // alert\n$size-sm: 4px;\n", string(out))
}
