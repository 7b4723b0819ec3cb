package colfmt

import (
	"fmt"
)

// Compile resolves descriptors against reg and returns the compiled
// columns in descriptor order. A nil reg means the package-level default
// registry.
//
// Compilation is all-or-nothing: a descriptor naming an unregistered
// extractor fails with [ErrUnknownExtractor] and a negative width fails
// with [ErrInvalidWidth]; no partial column list is returned. Width and
// style are carried verbatim onto the compiled column.
func Compile(descs []Descriptor, reg *Registry) ([]Column, error) {
	if reg == nil {
		reg = defaultRegistry
	}
	cols := make([]Column, 0, len(descs))
	for i, d := range descs {
		if d.Width < 0 {
			return nil, fmt.Errorf("%w: descriptor %d (%q) has width %d", ErrInvalidWidth, i, d.Extractor, d.Width)
		}
		ex, ok := reg.Lookup(d.Extractor)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtractor, d.Extractor)
		}
		cols = append(cols, Column{Extract: ex, Width: d.Width, Style: d.Style})
	}
	return cols, nil
}

// Build compiles descs against reg and constructs a formatter in one call.
func Build(descs []Descriptor, reg *Registry, opts ...Option) (*Formatter, error) {
	cols, err := Compile(descs, reg)
	if err != nil {
		return nil, err
	}
	return New(cols, opts...), nil
}
