// Package colfmt formats candidates for interactive selection UIs as
// column-based display lines.
//
// A host declares columns as an ordered list of [Descriptor] values, each
// naming a registered extractor plus an optional minimum width and an
// optional style token. [Compile] resolves the descriptors against a
// [Registry] into [Column] values, and [New] (or [Build], which does
// both) constructs a reusable [Formatter] that turns one candidate string
// into one formatted line:
//
//	colfmt.Register("name", nameExtractor)
//	colfmt.Register("mode", modeExtractor)
//
//	f, err := colfmt.Build([]colfmt.Descriptor{
//		{Extractor: "name", Width: 30},
//		{Extractor: "mode", Width: 12, Style: "dim"},
//	}, nil)
//	...
//	line := f.Format(candidate)
//
// # Extractors
//
// An [Extractor] maps a [Candidate] to a field value, or reports the
// field absent. Candidates carry both the original string and, when a
// [Mapper] is configured with [WithMapper], a richer intermediate object
// derived from it; extractors that need the raw string read
// [Candidate.Raw] regardless of mapping. Absence is distinct from an
// empty string: an empty present value is still padded and styled, while
// an absent field produces an empty, unstyled segment that keeps its
// separator slot so column positions stay fixed across candidates.
//
// Extractor constructors for common cases: [Raw], [Const], [Sprint],
// [Field].
//
// # Widths
//
// A column width is a minimum display width in terminal cells, measured
// with go-runewidth so wide characters pad correctly. Shorter fields are
// right-padded with spaces; longer fields are never truncated.
//
// # Styles
//
// Style tokens are opaque to the core. [Formatter.Segments] returns
// [Segment] pairs carrying the padded text and its token for hosts that
// render styles themselves; [Formatter.Format] realizes tokens through an
// optional [Styler]:
//
//   - [Styles] — lipgloss styles keyed by token
//   - [StyleFuncs] — plain func(string) string per token
//
// Style is applied to the padded segment as one unit, so padding spaces
// inherit the field's style.
//
// # Separator
//
// Fields are joined with a process-wide separator (default two spaces),
// read at format time: [SetSeparator] affects subsequent calls of
// formatters that are already built. See [Separator].
//
// # Configuration
//
// [ParseDescriptors] decodes a descriptor list from YAML, so hosts can
// ship column layouts as config files.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownExtractor] — descriptor names an unregistered extractor
//   - [ErrInvalidWidth] — descriptor carries a negative width
//   - [ErrInvalidDescriptors] — malformed YAML descriptor config
//
// Compilation is fail-fast: a bad descriptor list never yields a partial
// formatter. Extractor failures at format time are not recovered: a
// panicking extractor propagates to the Format caller, since swallowing
// it would hide data-derivation bugs in the extractor.
package colfmt
