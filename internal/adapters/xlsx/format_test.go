package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hailam/tokenfiles/internal/ports"
)

func TestPalette(t *testing.T) {
	dict := &ports.Dictionary{AllProperties: []ports.Token{
		{Name: "color-red", Category: "color", Value: "#FF0000", Comment: "alert"},
		{Name: "size-sm", Category: "size", Value: "4px"},
	}}
	spec := ports.NewFileSpec("palette.xlsx", nil, Palette)
	spec.Options["sheet"] = "Palette"

	out, err := Palette(spec, &ports.PlatformConfig{}, dict)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Palette"}, f.GetSheetList())

	rows, err := f.GetRows("Palette")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Swatch", "Name", "Value", "Comment"}, rows[0])
	assert.Equal(t, []string{"", "color-red", "#FF0000", "alert"}, rows[1])
	assert.Equal(t, []string{"", "size-sm", "4px"}, rows[2])

	swatch, err := f.GetCellStyle("Palette", "A2")
	require.NoError(t, err)
	assert.NotZero(t, swatch, "color row should carry a fill style")

	plain, err := f.GetCellStyle("Palette", "A3")
	require.NoError(t, err)
	assert.Zero(t, plain, "non-color row should not be styled")
}

func TestPalette_Category(t *testing.T) {
	dict := &ports.Dictionary{AllProperties: []ports.Token{
		{Name: "color-red", Category: "color", Value: "#FF0000"},
		{Name: "size-sm", Category: "size", Value: "4px"},
	}}
	spec := ports.NewFileSpec("colors.xlsx", nil, Palette)
	spec.Options["category"] = "color"

	out, err := Palette(spec, &ports.PlatformConfig{}, dict)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tokens")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
