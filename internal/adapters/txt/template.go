package txt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterTemplate("txt/listing", New(listingTemplate))
}

const listingTemplate = `{{ header }}Platform: {{ .Platform.Name }}
File: {{ .File.Destination }}
{{ range .Tokens }}
{{ pad .Name $.Width }}  {{ .Value }}{{ if .Comment }}  # {{ .Comment }}{{ end }}{{ end }}
`

// Data is what a text template sees.
type Data struct {
	File     *ports.FileSpec
	Platform *ports.PlatformConfig
	Tokens   []ports.Token
	Width    int // longest token name
}

// New parses src and returns a template strategy. It panics on a malformed
// template, so it is meant for package-level registration.
func New(src string) ports.ContentFunc {
	// header is rebound per execution; the placeholder only satisfies Parse.
	tmpl := template.Must(template.New("txt").Funcs(template.FuncMap{
		"header": func() string { return "" },
		"pad":    pad,
	}).Parse(src))

	return func(self *ports.FileSpec, platform *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
		t, err := tmpl.Clone()
		if err != nil {
			return nil, err
		}
		t.Funcs(template.FuncMap{
			"header": func() string { return utils.FileHeader(self, "", "# ", "") },
		})

		data := Data{File: self, Platform: platform, Tokens: dict.Filter(self.Option("category", ""))}
		for _, tok := range data.Tokens {
			data.Width = max(data.Width, len(tok.Name))
		}

		var buf bytes.Buffer
		if err := t.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("failed to execute template for %s: %w", self.Destination, err)
		}
		return buf.Bytes(), nil
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
