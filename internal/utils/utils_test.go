package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/hailam/tokenfiles/internal/ports"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input      string
		r, g, b, a uint8
		wantErr    bool
	}{
		// Valid cases
		{"#FF0000", 255, 0, 0, 255, false},
		{"#ff0000", 255, 0, 0, 255, false},
		{"#f00", 255, 0, 0, 255, false},
		{"#0a0b0c80", 10, 11, 12, 128, false},
		{" #123456 ", 0x12, 0x34, 0x56, 255, false},

		// Invalid cases
		{"", 0, 0, 0, 0, true},
		{"FF0000", 0, 0, 0, 0, true}, // Missing '#'
		{"#GG0000", 0, 0, 0, 0, true},
		{"#12345", 0, 0, 0, 0, true},
		{"rgb(0,0,0)", 0, 0, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			r, g, b, a, err := ParseHexColor(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
				return
			}
			if !tc.wantErr && (r != tc.r || g != tc.g || b != tc.b || a != tc.a) {
				t.Errorf("ParseHexColor(%q) = %d,%d,%d,%d want %d,%d,%d,%d", tc.input, r, g, b, a, tc.r, tc.g, tc.b, tc.a)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"16", 16, false},
		{"4px", 4, false},
		{"1.5rem", 24, false},
		{"2EM", 32, false},
		{"12pt", 16, false},

		{"", 0, true},
		{"px", 0, true},
		{"10vw", 0, true},
		{"1.2.3px", 0, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			got, err := ParseDimension(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseDimension(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
				return
			}
			if !tc.wantErr && math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("ParseDimension(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFileHeader(t *testing.T) {
	spec := ports.NewFileSpec("a.css", nil, nil)
	got := FileHeader(spec, "/**", " * ", " */")
	want := "/**\n * Do not edit directly\n * Generated by tokenfiles\n */\n\n"
	if got != want {
		t.Errorf("FileHeader() = %q, want %q", got, want)
	}

	spec.Options["showFileHeader"] = "false"
	if got := FileHeader(spec, "/**", " * ", " */"); got != "" {
		t.Errorf("FileHeader() with showFileHeader=false = %q, want empty", got)
	}
}
