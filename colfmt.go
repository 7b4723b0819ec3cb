package colfmt

import (
	"errors"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownExtractor   = errors.New("unknown extractor")
	ErrInvalidWidth       = errors.New("invalid column width")
	ErrInvalidDescriptors = errors.New("invalid descriptors")
)

// Descriptor declares one column of the output line. Descriptors are
// ordered; their order determines field order in the formatted line.
type Descriptor struct {
	// Extractor names a registered extractor. Required.
	Extractor string `yaml:"extractor"`

	// Width is the minimum display width of the field in terminal cells.
	// Shorter values are right-padded with spaces; longer values are never
	// truncated. Zero means no minimum.
	Width int `yaml:"width,omitempty"`

	// Style is an opaque style token attached to the field. The core never
	// interprets it; a [Styler] realizes it at render time. Empty means
	// unstyled.
	Style string `yaml:"style,omitempty"`
}

// Candidate carries one selectable item through extraction.
type Candidate struct {
	// Raw is the original candidate string, always available even when a
	// mapper has replaced the working object.
	Raw string

	// Obj is the mapper output, or Raw when the formatter has no mapper.
	Obj any
}

// Extractor derives one display field from a candidate. The second return
// reports whether the field has a value: false means the field is absent,
// which is distinct from an empty string (an empty present value still
// participates in width padding and styling).
type Extractor func(Candidate) (string, bool)

// Mapper derives an intermediate object from the raw candidate string,
// for extractors that need more structure than the string offers.
type Mapper func(raw string) any

// Column is a compiled column: a descriptor's metadata bound to its
// resolved extractor. Columns are immutable after [Compile].
type Column struct {
	Extract Extractor
	Width   int
	Style   string
}
