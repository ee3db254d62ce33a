package json

import (
	"encoding/json"
	"fmt"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
)

func init() {
	factory.RegisterFormat("json/nested", Nested)
	factory.RegisterFormat("json/flat", Flat)
}

// Nested writes the dictionary tree back out as indented JSON. The category
// option selects a single top-level branch.
func Nested(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	var tree any = dict.Properties
	if category := self.Option("category", ""); category != "" {
		branch, ok := dict.Properties[category]
		if !ok {
			return nil, fmt.Errorf("category '%s' not found in dictionary", category)
		}
		tree = map[string]any{category: branch}
	}
	return marshal(tree)
}

// Flat writes a single object mapping token names to values.
func Flat(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	flat := make(map[string]string)
	for _, tok := range dict.Filter(self.Option("category", "")) {
		flat[tok.Name] = tok.Value
	}
	return marshal(flat)
}

func marshal(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(out, '\n'), nil
}
