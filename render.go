package colfmt

import (
	"fmt"
	"io"
	"iter"
)

// Write formats each candidate and writes it to w as its own line.
func (f *Formatter) Write(w io.Writer, candidates ...string) error {
	for _, c := range candidates {
		if _, err := fmt.Fprintln(w, f.Format(c)); err != nil {
			return err
		}
	}
	return nil
}

// WriteIter formats candidates from an iterator and writes them to w as
// they arrive, one line each. Each line is written immediately, so slow
// producers still yield incremental output.
func (f *Formatter) WriteIter(w io.Writer, seq iter.Seq[string]) error {
	var writeErr error
	seq(func(c string) bool {
		if _, err := fmt.Fprintln(w, f.Format(c)); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

// WriteChan formats candidates from a channel and writes them to w.
// It is a thin wrapper around [Formatter.WriteIter].
func (f *Formatter) WriteChan(w io.Writer, ch <-chan string) error {
	return f.WriteIter(w, chanToIter(ch))
}

func chanToIter(ch <-chan string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := range ch {
			if !yield(c) {
				return
			}
		}
	}
}
