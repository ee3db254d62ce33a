package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterFormat("xlsx/palette", Palette)
}

var columns = []string{"Swatch", "Name", "Value", "Comment"}

// Palette builds a workbook with one row per token. Hex color tokens get a
// filled swatch cell in column A. The sheet option names the worksheet.
func Palette(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := self.Option("sheet", "Tokens")
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet '%s': %w", sheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, title := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return nil, err
	}

	for i, tok := range dict.Filter(self.Option("category", "")) {
		row := i + 2
		values := []string{"", tok.Name, tok.Value, tok.Comment}
		for col, v := range values {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to set %s for %s: %w", cell, tok.Name, err)
			}
		}
		if err := fillSwatch(f, sheet, row, tok.Value); err != nil {
			return nil, fmt.Errorf("failed to fill swatch for %s: %w", tok.Name, err)
		}
	}

	if err := f.SetColWidth(sheet, "B", "C", 28); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func fillSwatch(f *excelize.File, sheet string, row int, value string) error {
	r, g, b, _, err := utils.ParseHexColor(value)
	if err != nil {
		return nil // not a color
	}
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.ToUpper(fmt.Sprintf("%02x%02x%02x", r, g, b))}},
	})
	if err != nil {
		return err
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return f.SetCellStyle(sheet, cell, cell, style)
}
