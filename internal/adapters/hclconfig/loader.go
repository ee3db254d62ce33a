// Package hclconfig loads platform definitions from HCL files.
//
// A platform file looks like:
//
//	platform "web" {
//	  build_path = "build/web/"
//
//	  file "variables.css" {
//	    format  = "css/variables"
//	    options = { selector = ":root" }
//	  }
//	}
//
// Template and format names are resolved against a ports.FormatRegistry while
// loading, so every FileSpec leaves here with its strategy already fixed.
package hclconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/hailam/tokenfiles/internal/ports"
)

type hclConfigFile struct {
	Platforms []*hclPlatform `hcl:"platform,block"`
}

type hclPlatform struct {
	Name      string         `hcl:"name,label"`
	BuildPath string         `hcl:"build_path,optional"`
	Files     []*hclFileSpec `hcl:"file,block"`
}

type hclFileSpec struct {
	Destination string    `hcl:"destination,label"`
	Template    *string   `hcl:"template,optional"`
	Format      *string   `hcl:"format,optional"`
	Options     cty.Value `hcl:"options,optional"`
}

// LoadFile parses the HCL file at path.
func LoadFile(path string, registry ports.FormatRegistry) ([]*ports.PlatformConfig, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(path, file, registry)
}

// Parse decodes platforms from in-memory HCL source. filename is used in
// diagnostics only.
func Parse(src []byte, filename string, registry ports.FormatRegistry) ([]*ports.PlatformConfig, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(filename, file, registry)
}

func decode(filename string, file *hcl.File, registry ports.FormatRegistry) ([]*ports.PlatformConfig, error) {
	var parsed hclConfigFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	seen := make(map[string]bool)
	platforms := make([]*ports.PlatformConfig, 0, len(parsed.Platforms))
	for _, p := range parsed.Platforms {
		if seen[p.Name] {
			return nil, fmt.Errorf("%s: duplicate platform %q", filename, p.Name)
		}
		seen[p.Name] = true

		platform, err := newPlatform(p, registry)
		if err != nil {
			return nil, fmt.Errorf("%s: platform %q: %w", filename, p.Name, err)
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}

func newPlatform(p *hclPlatform, registry ports.FormatRegistry) (*ports.PlatformConfig, error) {
	platform := &ports.PlatformConfig{Name: p.Name, BuildPath: p.BuildPath}
	destinations := make(map[string]bool)
	for _, f := range p.Files {
		if destinations[f.Destination] {
			return nil, fmt.Errorf("duplicate destination %q", f.Destination)
		}
		destinations[f.Destination] = true

		spec, err := newFileSpec(f, registry)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", f.Destination, err)
		}
		platform.Files = append(platform.Files, spec)
	}
	return platform, nil
}

func newFileSpec(f *hclFileSpec, registry ports.FormatRegistry) (*ports.FileSpec, error) {
	var tmpl, format ports.ContentFunc
	var err error
	if f.Template != nil {
		if tmpl, err = registry.Template(*f.Template); err != nil {
			return nil, err
		}
	}
	if f.Format != nil {
		if format, err = registry.Format(*f.Format); err != nil {
			return nil, err
		}
	}

	spec := ports.NewFileSpec(f.Destination, tmpl, format)
	switch spec.Strategy.Kind {
	case ports.StrategyTemplate:
		spec.Strategy.Name = *f.Template
	case ports.StrategyFormat:
		spec.Strategy.Name = *f.Format
	}

	opts, err := optionsFromCty(f.Options)
	if err != nil {
		return nil, err
	}
	spec.Options = opts
	return spec, nil
}

// optionsFromCty flattens an object or map value into string options. Numbers
// and bools are converted to their string form.
func optionsFromCty(val cty.Value) (map[string]string, error) {
	opts := make(map[string]string)
	if val.IsNull() {
		return opts, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("options must be an object, got %s", ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("options must be known values")
	}

	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if v.IsNull() {
			continue
		}
		sv, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", k.AsString(), err)
		}
		opts[k.AsString()] = sv.AsString()
	}
	return opts, nil
}

// Loader adapts LoadFile to the ports.PlatformLoader interface.
type Loader struct {
	registry ports.FormatRegistry
}

// New returns a PlatformLoader resolving names against registry.
func New(registry ports.FormatRegistry) ports.PlatformLoader {
	return &Loader{registry: registry}
}

// Load reads the HCL file at path.
func (l *Loader) Load(path string) ([]*ports.PlatformConfig, error) {
	return LoadFile(path, l.registry)
}
