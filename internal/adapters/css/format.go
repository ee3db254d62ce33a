package css

import (
	"fmt"
	"strings"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
	"github.com/hailam/tokenfiles/internal/utils"
)

func init() {
	factory.RegisterFormat("css/variables", Variables)
	factory.RegisterFormat("scss/variables", ScssVariables)
}

// Variables renders tokens as CSS custom properties inside the selector
// option (default ":root"). The category option limits the tokens emitted.
func Variables(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	var b strings.Builder
	b.WriteString(utils.FileHeader(self, "/**", " * ", " */"))
	fmt.Fprintf(&b, "%s {\n", self.Option("selector", ":root"))
	for _, tok := range dict.Filter(self.Option("category", "")) {
		fmt.Fprintf(&b, "  --%s: %s;", tok.Name, tok.Value)
		if tok.Comment != "" {
			fmt.Fprintf(&b, " /* %s */", tok.Comment)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

// ScssVariables renders tokens as SCSS variables.
func ScssVariables(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	var b strings.Builder
	b.WriteString(utils.FileHeader(self, "", "// ", ""))
	for _, tok := range dict.Filter(self.Option("category", "")) {
		fmt.Fprintf(&b, "$%s: %s;", tok.Name, tok.Value)
		if tok.Comment != "" {
			fmt.Fprintf(&b, " // %s", tok.Comment)
		}
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}
