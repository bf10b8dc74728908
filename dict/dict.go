// Package dict defines the word-validity collaborator used by heading-shape
// validation, along with a per-document memoization cache, a bounded-retry
// wrapper for unreliable backends, and a built-in English word list.
//
// The pipeline only ever asks one question: is this token a real word. A
// backend that cannot answer returns an error; the pipeline then degrades by
// skipping the dictionary-ratio check for the rest of the document rather
// than failing it.
package dict

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnavailable indicates the dictionary backend cannot be reached or
// initialized. Callers should treat lookups as always-pass after bounded
// retries rather than failing the document.
var ErrUnavailable = errors.New("dict: dictionary unavailable")

// Dictionary answers whether a token is a valid word in the target language.
// Implementations must be safe for concurrent use.
type Dictionary interface {
	// Contains reports whether word is a valid dictionary word. Lookups are
	// case-insensitive.
	Contains(word string) (bool, error)
}

// Func adapts an ordinary function to the Dictionary interface
type Func func(word string) (bool, error)

// Contains calls f
func (f Func) Contains(word string) (bool, error) {
	return f(word)
}

var foldCaser = cases.Fold()

// Fold normalizes a token for lookup: trimmed and case-folded
func Fold(word string) string {
	return foldCaser.String(strings.TrimSpace(word))
}
