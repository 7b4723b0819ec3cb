package colfmt

import (
	"fmt"
)

// Raw returns an extractor yielding the original candidate string, even
// when a mapper has replaced the working object.
func Raw() Extractor {
	return func(c Candidate) (string, bool) { return c.Raw, true }
}

// Const returns an extractor yielding the same string for every
// candidate. Useful for fixed markers and separatory glyphs.
func Const(s string) Extractor {
	return func(Candidate) (string, bool) { return s, true }
}

// Sprint returns an extractor that renders the working object with the
// fmt package's default formatting.
func Sprint() Extractor {
	return func(c Candidate) (string, bool) { return fmt.Sprint(c.Obj), true }
}

// Field wraps a function over the working object as an extractor, for
// hosts whose extractors only need the mapped object.
func Field(fn func(obj any) (string, bool)) Extractor {
	return func(c Candidate) (string, bool) { return fn(c.Obj) }
}
