package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/tokenfiles/internal/ports"
)

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" into its channels.
// Alpha defaults to 255.
func ParseHexColor(s string) (r, g, b, a uint8, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 || !strings.HasPrefix(strings.TrimSpace(s), "#") {
		return 0, 0, 0, 0, fmt.Errorf("invalid hex color '%s'", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid hex color '%s': %w", s, err)
	}
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// IsHexColor reports whether s parses as a hex color.
func IsHexColor(s string) bool {
	_, _, _, _, err := ParseHexColor(s)
	return err == nil
}

// dimension units, converted to pixels
var units = map[string]float64{
	"px":  1,
	"":    1,
	"rem": 16,
	"em":  16,
	"pt":  4.0 / 3.0,
}

// ParseDimension parses values like "16", "4px", "1.5rem" or "12pt" into pixels.
func ParseDimension(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New("dimension is empty")
	}
	i := len(s)
	for i > 0 && (s[i-1] < '0' || s[i-1] > '9') && s[i-1] != '.' {
		i--
	}
	num, unit := s[:i], s[i:]
	mult, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("unknown dimension unit '%s'", unit)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension number: %v", err)
	}
	return v * mult, nil
}

// FileHeader renders the "do not edit" banner for text outputs using the given
// comment delimiters. It returns "" when the file sets showFileHeader=false.
func FileHeader(spec *ports.FileSpec, open, line, close string) string {
	if spec != nil && spec.Option("showFileHeader", "true") == "false" {
		return ""
	}
	var b strings.Builder
	if open != "" {
		b.WriteString(open + "\n")
	}
	b.WriteString(line + "Do not edit directly\n")
	b.WriteString(line + "Generated by tokenfiles\n")
	if close != "" {
		b.WriteString(close + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
