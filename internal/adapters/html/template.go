package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterTemplate("html/swatches", Swatches)
}

var swatchesTemplate = template.Must(template.New("swatches").Funcs(template.FuncMap{
	"isColor": utils.IsHexColor,
	"css":     func(s string) template.CSS { return template.CSS(s) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{ .Title }}</title>
	<style>body { padding: 1rem; font-family: sans-serif; } .swatch { display: inline-block; width: 2rem; height: 2rem; border: 1px solid #ccc; vertical-align: middle; }</style>
</head>
<body>
	<h1>{{ .Title }}</h1>
	<table>
		<tr><th></th><th>Name</th><th>Value</th><th>Comment</th></tr>
{{- range .Tokens }}
		<tr>
			<td>{{ if isColor .Value }}<span class="swatch" style="background: {{ css .Value }}"></span>{{ end }}</td>
			<td><code>{{ .Name }}</code></td>
			<td>{{ .Value }}</td>
			<td>{{ .Comment }}</td>
		</tr>
{{- end }}
	</table>
</body>
</html>
`))

type page struct {
	Title  string
	Tokens []ports.Token
}

// Swatches renders an HTML documentation page listing tokens, with a color
// swatch for hex color values. The title option sets the page heading.
func Swatches(self *ports.FileSpec, platform *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	data := page{
		Title:  self.Option("title", fmt.Sprintf("%s tokens", platform.Name)),
		Tokens: dict.Filter(self.Option("category", "")),
	}
	var buf bytes.Buffer
	if err := swatchesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render swatches: %w", err)
	}
	return buf.Bytes(), nil
}
