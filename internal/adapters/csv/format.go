package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/ports"
)

func init() {
	factory.RegisterFormat("csv/flat", Flat)
}

var header = []string{"name", "category", "path", "value", "comment"}

// Flat renders one row per token. The separator option overrides the comma.
func Flat(self *ports.FileSpec, _ *ports.PlatformConfig, dict *ports.Dictionary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if sep := self.Option("separator", ","); sep != "," {
		if len(sep) != 1 {
			return nil, fmt.Errorf("separator must be a single character, got '%s'", sep)
		}
		w.Comma = rune(sep[0])
	}

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, tok := range dict.Filter(self.Option("category", "")) {
		row := []string{tok.Name, tok.Category, strings.Join(tok.Path, "."), tok.Value, tok.Comment}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row for %s: %w", tok.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
