package pdf

import (
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterFormat("pdf/swatches", Swatches)
}

// A4 layout, in points.
const (
	margin    = 36.0
	swatch    = 72.0
	gutter    = 18.0
	labelGap  = 14.0
	perRow    = 6
	rowHeight = swatch + 2*labelGap + gutter
	fontName  = "label"
)

// Swatches draws a grid of filled squares, one per hex color token. When the
// font option points at a TTF file each swatch is labelled with its name and
// value; without it only the colors are drawn.
func Swatches(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	labelled := false
	if fontPath := self.Option("font", ""); fontPath != "" {
		if err := pdf.AddTTFFont(fontName, fontPath); err != nil {
			return nil, fmt.Errorf("failed to load font %s: %w", fontPath, err)
		}
		if err := pdf.SetFont(fontName, "", 8); err != nil {
			return nil, err
		}
		labelled = true
	}

	pageHeight := gopdf.PageSizeA4.H
	x, y, col := margin, margin, 0
	for _, tok := range dict.Filter(self.Option("category", "")) {
		r, g, b, _, err := utils.ParseHexColor(tok.Value)
		if err != nil {
			continue
		}
		if y+rowHeight > pageHeight-margin {
			pdf.AddPage()
			x, y, col = margin, margin, 0
		}

		pdf.SetFillColor(r, g, b)
		pdf.RectFromUpperLeftWithStyle(x, y, swatch, swatch, "F")
		if labelled {
			pdf.SetTextColor(0, 0, 0)
			for i, text := range []string{tok.Name, tok.Value} {
				pdf.SetXY(x, y+swatch+float64(i)*labelGap+2)
				if err := pdf.Cell(nil, text); err != nil {
					return nil, fmt.Errorf("failed to label %s: %w", tok.Name, err)
				}
			}
		}

		col++
		x += swatch + gutter
		if col == perRow {
			x, y, col = margin, y+rowHeight, 0
		}
	}

	out, err := pdf.GetBytesPdfReturnErr()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return out, nil
}
