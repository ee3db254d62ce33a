package png

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterFormat("png/palette", Palette)
}

const defaultSwatchSize = 32

// Palette renders a horizontal strip with one square per hex color token.
// The swatchSize option sets the square's side in pixels.
func Palette(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	side, err := strconv.Atoi(self.Option("swatchSize", strconv.Itoa(defaultSwatchSize)))
	if err != nil || side < 1 {
		return nil, fmt.Errorf("invalid swatchSize '%s'", self.Option("swatchSize", ""))
	}

	var colors []color.NRGBA
	for _, tok := range dict.Filter(self.Option("category", "")) {
		r, g, b, a, err := utils.ParseHexColor(tok.Value)
		if err != nil {
			continue
		}
		colors = append(colors, color.NRGBA{R: r, G: g, B: b, A: a})
	}
	if len(colors) == 0 {
		return nil, errors.New("no color tokens to render")
	}

	img := image.NewNRGBA(image.Rect(0, 0, side*len(colors), side))
	for i, c := range colors {
		for x := i * side; x < (i+1)*side; x++ {
			for y := 0; y < side; y++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
