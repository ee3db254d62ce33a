package ports

// Token is one resolved design token.
type Token struct {
	Name     string   // kebab-cased path, e.g. "color-brand-red"
	Path     []string // path segments from the dictionary root
	Category string   // first path segment
	Value    string
	Comment  string
}

// Dictionary is the fully resolved token set handed to every content strategy.
// It is read-only once built.
type Dictionary struct {
	// Properties is the nested tree as loaded.
	Properties map[string]any
	// AllProperties is the flattened token list, ordered by path.
	AllProperties []Token
}

// Filter returns the tokens whose Category equals category. An empty category
// returns every token. The dictionary is not modified.
func (d *Dictionary) Filter(category string) []Token {
	if category == "" {
		return d.AllProperties
	}
	out := make([]Token, 0, len(d.AllProperties))
	for _, tok := range d.AllProperties {
		if tok.Category == category {
			out = append(out, tok)
		}
	}
	return out
}
