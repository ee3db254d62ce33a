package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterFormat("android/resources", AndroidResources)
}

type resources struct {
	XMLName xml.Name   `xml:"resources"`
	Items   []resource `xml:",any"`
}

type resource struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
	Value   string `xml:",chardata"`
}

// AndroidResources renders an Android values file. Hex colors become <color>
// elements, dimensions with a unit <dimen>, everything else <string>.
func AndroidResources(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	doc := resources{}
	for _, tok := range dict.Filter(self.Option("category", "")) {
		doc.Items = append(doc.Items, resource{
			XMLName: xml.Name{Local: resourceType(tok.Value)},
			Name:    strings.ReplaceAll(tok.Name, "-", "_"),
			Value:   tok.Value,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if header := utils.FileHeader(self, "", "  ", ""); header != "" {
		buf.WriteString("<!--\n" + strings.TrimRight(header, "\n") + "\n-->\n")
	}
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode android resources: %w", err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func resourceType(value string) string {
	if utils.IsHexColor(value) {
		return "color"
	}
	if _, err := utils.ParseDimension(value); err == nil && strings.TrimLeft(value, "0123456789.") != "" {
		return "dimen"
	}
	return "string"
}
