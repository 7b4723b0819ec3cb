package colfmt

import (
	"fmt"
	"sort"
)

// Registry maps extractor names to extractor functions. The zero value is
// not usable; create one with [NewRegistry] or use the package-level
// default via [Register] and [Lookup].
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]Extractor)}
}

// Register adds an extractor under name. Registering the same name again
// replaces the previous extractor. An empty name or nil extractor is a
// programmer error and panics.
func (r *Registry) Register(name string, ex Extractor) {
	if name == "" {
		panic("colfmt: Register with empty extractor name")
	}
	if ex == nil {
		panic(fmt.Sprintf("colfmt: Register %q with nil extractor", name))
	}
	r.extractors[name] = ex
}

// Lookup returns the extractor registered under name.
func (r *Registry) Lookup(name string) (Extractor, bool) {
	ex, ok := r.extractors[name]
	return ex, ok
}

// Names returns all registered extractor names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds an extractor to the package-level default registry.
func Register(name string, ex Extractor) {
	defaultRegistry.Register(name, ex)
}

// Lookup returns an extractor from the package-level default registry.
func Lookup(name string) (Extractor, bool) {
	return defaultRegistry.Lookup(name)
}
