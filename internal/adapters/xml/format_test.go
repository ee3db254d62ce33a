package xml

import (
	"strings"
	"testing"

	"github.com/hailam/tokenfiles/internal/ports"
)

func TestAndroidResources(t *testing.T) {
	dict := &ports.Dictionary{AllProperties: []ports.Token{
		{Name: "color-brand-red", Category: "color", Value: "#FF0000"},
		{Name: "size-sm", Category: "size", Value: "4px"},
		{Name: "font-family", Category: "font", Value: "Inter"},
		{Name: "size-scale", Category: "size", Value: "2"},
	}}
	spec := ports.NewFileSpec("values/tokens.xml", nil, AndroidResources)

	out, err := AndroidResources(spec, &ports.PlatformConfig{}, dict)
	if err != nil {
		t.Fatalf("AndroidResources() error = %v", err)
	}
	got := string(out)

	wantParts := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"Do not edit directly",
		"<resources>",
		`<color name="color_brand_red">#FF0000</color>`,
		`<dimen name="size_sm">4px</dimen>`,
		`<string name="font_family">Inter</string>`,
		`<string name="size_scale">2</string>`,
		"</resources>",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("output missing %q\n%s", part, got)
		}
	}
}

func TestAndroidResources_CategoryNoHeader(t *testing.T) {
	dict := &ports.Dictionary{AllProperties: []ports.Token{
		{Name: "color-red", Category: "color", Value: "#F00"},
		{Name: "size-sm", Category: "size", Value: "4px"},
	}}
	spec := ports.NewFileSpec("colors.xml", nil, AndroidResources)
	spec.Options["category"] = "color"
	spec.Options["showFileHeader"] = "false"

	out, err := AndroidResources(spec, &ports.PlatformConfig{}, dict)
	if err != nil {
		t.Fatalf("AndroidResources() error = %v", err)
	}
	if strings.Contains(string(out), "size_sm") || strings.Contains(string(out), "<!--") {
		t.Errorf("unexpected content:\n%s", out)
	}
}
