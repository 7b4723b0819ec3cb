package colfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter turns candidate strings into formatted display lines. Build
// one with [New] or [Build] and reuse it for every candidate shown.
type Formatter struct {
	cols   []Column
	mapper Mapper
	styler Styler
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithMapper sets the candidate-to-object mapper. Extractors then receive
// the mapper's output in [Candidate.Obj]; the original string stays
// available in [Candidate.Raw].
func WithMapper(m Mapper) Option {
	return func(f *Formatter) { f.mapper = m }
}

// WithStyler sets the style capability used by [Formatter.Format] to
// realize style tokens. Without one, tokens are carried on segments but
// the text is written unmodified.
func WithStyler(s Styler) Option {
	return func(f *Formatter) { f.styler = s }
}

// New constructs a formatter over compiled columns. The column slice is
// copied; later mutation of cols does not affect the formatter.
func New(cols []Column, opts ...Option) *Formatter {
	f := &Formatter{cols: make([]Column, len(cols))}
	copy(f.cols, cols)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Segments extracts and pads one segment per column, in column order.
//
// A present value shorter than the column width is right-padded with
// spaces to that width, measured in display cells; wider values are left
// alone (width is a minimum, not a cap). An absent value yields a zero
// Segment regardless of width or style. The column's style token is
// attached only when the value is present, so renderers never style
// absent fields.
//
// Extractor panics are not recovered; they propagate to the caller.
func (f *Formatter) Segments(raw string) []Segment {
	c := Candidate{Raw: raw, Obj: raw}
	if f.mapper != nil {
		c.Obj = f.mapper(raw)
	}
	segs := make([]Segment, len(f.cols))
	for i, col := range f.cols {
		val, ok := col.Extract(c)
		if !ok {
			continue
		}
		segs[i] = Segment{Text: pad(val, col.Width), Style: col.Style}
	}
	return segs
}

// Format returns the display line for one candidate: extracted, padded,
// styled segments joined with the process-wide separator. The separator
// is read on every call, so [SetSeparator] affects formatters that were
// built earlier. Zero columns produce an empty line. Absent fields
// contribute empty segments but keep their separator slots, so column
// positions stay fixed across candidates.
func (f *Formatter) Format(raw string) string {
	segs := f.Segments(raw)
	parts := make([]string, len(segs))
	for i, seg := range segs {
		if seg.Style != "" && f.styler != nil {
			parts[i] = f.styler.Apply(seg.Text, seg.Style)
		} else {
			parts[i] = seg.Text
		}
	}
	return strings.Join(parts, Separator())
}

// Func returns Format as a bare function value, for host integration
// points that register a candidate-to-line callback.
func (f *Formatter) Func() func(string) string {
	return f.Format
}

func pad(s string, width int) string {
	if width <= 0 {
		return s
	}
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
