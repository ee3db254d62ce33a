package ports

// ContentFunc produces the content of one file. The owning FileSpec is passed
// explicitly so a strategy can read its destination and options.
type ContentFunc func(self *FileSpec, platform *PlatformConfig, dict *Dictionary) ([]byte, error)

// StrategyKind tags which content strategy a FileSpec carries.
type StrategyKind int

const (
	StrategyNone StrategyKind = iota
	StrategyTemplate
	StrategyFormat
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyTemplate:
		return "template"
	case StrategyFormat:
		return "format"
	default:
		return "none"
	}
}

// ContentStrategy is a resolved Template | Format | None variant.
type ContentStrategy struct {
	Kind StrategyKind
	Name string // registry name, informational
	Fn   ContentFunc
}

// FileSpec describes one output artifact.
type FileSpec struct {
	Destination string
	Options     map[string]string
	Strategy    ContentStrategy
}

// NewFileSpec resolves the content strategy once. A template takes priority
// over a format when both are supplied; with neither the spec carries
// StrategyNone and fails at build time.
func NewFileSpec(destination string, template, format ContentFunc) *FileSpec {
	fs := &FileSpec{Destination: destination, Options: map[string]string{}}
	switch {
	case template != nil:
		fs.Strategy = ContentStrategy{Kind: StrategyTemplate, Fn: template}
	case format != nil:
		fs.Strategy = ContentStrategy{Kind: StrategyFormat, Fn: format}
	}
	return fs
}

// Option returns the named option or def when it is unset.
func (f *FileSpec) Option(name, def string) string {
	if v, ok := f.Options[name]; ok && v != "" {
		return v
	}
	return def
}
