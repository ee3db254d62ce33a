package dxf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yofu/dxf"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterFormat("dxf/spacing", Spacing)
}

// rowPitch is the vertical distance between ruler lines, in drawing units.
const rowPitch = 10.0

// Spacing draws a ruler with one horizontal line per dimension token, its
// length the token value in pixels, stacked top to bottom. Defaults to the
// "size" category.
func Spacing(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	dwg := dxf.NewDrawing()
	drawn := 0
	for _, tok := range dict.Filter(self.Option("category", "size")) {
		length, err := utils.ParseDimension(tok.Value)
		if err != nil {
			continue
		}
		y := -float64(drawn) * rowPitch
		dwg.Line(0.0, y, 0.0, length, y, 0.0)
		drawn++
	}
	if drawn == 0 {
		return nil, errors.New("no dimension tokens to draw")
	}

	// The drawing only saves to a path, so render through a scratch file.
	dir, err := os.MkdirTemp("", "tokenfiles-dxf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	tempPath := filepath.Join(dir, "spacing.dxf")
	if err := dwg.SaveAs(tempPath); err != nil {
		return nil, fmt.Errorf("failed to save dxf: %w", err)
	}
	return os.ReadFile(tempPath)
}
