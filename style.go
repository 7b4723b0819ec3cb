package colfmt

import (
	"github.com/charmbracelet/lipgloss"
)

// Segment is one column's contribution to a formatted line: the padded
// field text plus the column's style token. The token is empty when the
// field was absent or the column declared no style. Padding spaces are
// part of Text, so a styled segment is styled as one unit including its
// padding.
type Segment struct {
	Text  string
	Style string
}

// Styler realizes style tokens as text decoration. The core only decides
// when a segment is styled; how a token maps to escape codes or markup is
// the styler's business.
type Styler interface {
	Apply(text, style string) string
}

// StyleFuncs adapts a map of per-token style functions to [Styler], for
// hosts that already have their own ANSI plumbing. Unknown tokens pass
// the text through unchanged.
type StyleFuncs map[string]func(string) string

func (m StyleFuncs) Apply(text, style string) string {
	fn, ok := m[style]
	if !ok || fn == nil {
		return text
	}
	return fn(text)
}

// Styles maps style tokens to lipgloss styles. Unknown tokens pass the
// text through unchanged.
type Styles map[string]lipgloss.Style

func (m Styles) Apply(text, style string) string {
	st, ok := m[style]
	if !ok {
		return text
	}
	return st.Render(text)
}
