package factory

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/hailam/tokenfiles/internal/ports"
)

var (
	registryMu       sync.RWMutex
	formatRegistry   = make(map[string]ports.ContentFunc)
	templateRegistry = make(map[string]ports.ContentFunc)
)

// RegisterFormat makes a format function available by name. Adapters call it
// from init(). Registering the same name twice replaces the earlier entry.
func RegisterFormat(name string, fn ports.ContentFunc) {
	register(formatRegistry, "format", name, fn)
}

// RegisterTemplate makes a template function available by name.
func RegisterTemplate(name string, fn ports.ContentFunc) {
	register(templateRegistry, "template", name, fn)
}

func register(reg map[string]ports.ContentFunc, kind, name string, fn ports.ContentFunc) {
	if fn == nil {
		panic(fmt.Sprintf("factory: nil %s registered for %q", kind, name))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := reg[name]; exists {
		slog.Warn("duplicate registration, replacing", "kind", kind, "name", name)
	}
	reg[name] = fn
}

// DynamicRegistry resolves names against the package-level registry.
type DynamicRegistry struct{}

// NewRegistry returns a registry backed by everything registered so far.
func NewRegistry() ports.FormatRegistry {
	return &DynamicRegistry{}
}

// Format returns the format registered under name.
func (r *DynamicRegistry) Format(name string) (ports.ContentFunc, error) {
	return lookup(formatRegistry, "format", name)
}

// Template returns the template registered under name.
func (r *DynamicRegistry) Template(name string) (ports.ContentFunc, error) {
	return lookup(templateRegistry, "template", name)
}

func lookup(reg map[string]ports.ContentFunc, kind, name string) (ports.ContentFunc, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("unknown %s: '%s'", kind, name)
	}
	return fn, nil
}

// RegisteredFormats lists format names in sorted order.
func RegisteredFormats() []string {
	return names(formatRegistry)
}

// RegisteredTemplates lists template names in sorted order.
func RegisteredTemplates() []string {
	return names(templateRegistry)
}

func names(reg map[string]ports.ContentFunc) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
