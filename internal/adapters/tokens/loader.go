package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hailam/tokenfiles/internal/ports"
)

// JsonLoader reads a resolved token tree from a JSON file. A leaf is either an
// object with a "value" key or a bare scalar.
type JsonLoader struct{}

func New() ports.DictionaryLoader {
	return &JsonLoader{}
}

// Load reads and parses the file at path.
func (l *JsonLoader) Load(path string) (*ports.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens file %s: %w", path, err)
	}
	dict, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tokens file %s: %w", path, err)
	}
	return dict, nil
}

// Parse decodes a JSON token tree.
func Parse(data []byte) (*ports.Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return FromMap(tree)
}

// FromMap builds a Dictionary from an already decoded tree. The tree is kept
// as Properties without copying.
func FromMap(tree map[string]any) (*ports.Dictionary, error) {
	if tree == nil {
		tree = map[string]any{}
	}
	dict := &ports.Dictionary{Properties: tree}
	if err := flatten(tree, nil, &dict.AllProperties); err != nil {
		return nil, err
	}
	sort.SliceStable(dict.AllProperties, func(i, j int) bool {
		return strings.Join(dict.AllProperties[i].Path, "\x00") < strings.Join(dict.AllProperties[j].Path, "\x00")
	})
	return dict, nil
}

func flatten(node map[string]any, path []string, out *[]ports.Token) error {
	for key, child := range node {
		childPath := append(append([]string(nil), path...), key)
		switch v := child.(type) {
		case map[string]any:
			if raw, ok := v["value"]; ok {
				tok, err := newToken(childPath, raw)
				if err != nil {
					return err
				}
				if c, ok := v["comment"].(string); ok {
					tok.Comment = c
				}
				*out = append(*out, tok)
				continue
			}
			if err := flatten(v, childPath, out); err != nil {
				return err
			}
		default:
			tok, err := newToken(childPath, v)
			if err != nil {
				return err
			}
			*out = append(*out, tok)
		}
	}
	return nil
}

func newToken(path []string, raw any) (ports.Token, error) {
	var value string
	switch v := raw.(type) {
	case string:
		value = v
	case json.Number:
		value = v.String()
	case bool:
		value = fmt.Sprint(v)
	case nil:
		return ports.Token{}, fmt.Errorf("token %s has a null value", strings.Join(path, "."))
	default:
		return ports.Token{}, fmt.Errorf("token %s has unresolved value of type %T", strings.Join(path, "."), raw)
	}
	return ports.Token{
		Name:     strings.Join(path, "-"),
		Path:     path,
		Category: path[0],
		Value:    value,
	}, nil
}
