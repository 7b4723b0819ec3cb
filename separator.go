package colfmt

// DefaultSeparator is the initial field separator.
const DefaultSeparator = "  "

// The separator is process-wide and read on every Format call, so hosts
// can restyle already-built formatters at run time. It is not
// synchronized; the expected host is a single-threaded UI loop. Callers
// that format from multiple goroutines must not mutate it concurrently.
var separator = DefaultSeparator

// Separator returns the current field separator.
func Separator() string {
	return separator
}

// SetSeparator sets the field separator used between columns. It takes
// effect on the next Format call of every formatter.
func SetSeparator(s string) {
	separator = s
}
