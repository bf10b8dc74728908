package dict

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed words.txt
var englishWords string

// English is a built-in offline dictionary backed by an embedded list of
// common English and document-structure vocabulary. It never fails, which
// makes it a reasonable fallback when no external dictionary is wired in.
type English struct {
	words map[string]struct{}
}

var (
	englishOnce sync.Once
	englishSet  map[string]struct{}
)

// NewEnglish returns the built-in English dictionary. The embedded list is
// parsed once per process and shared; lookups are read-only and safe for
// concurrent use.
func NewEnglish() *English {
	englishOnce.Do(func() {
		englishSet = make(map[string]struct{})
		for _, line := range strings.Split(englishWords, "\n") {
			word := strings.TrimSpace(line)
			if word != "" {
				englishSet[word] = struct{}{}
			}
		}
	})
	return &English{words: englishSet}
}

// Contains reports whether word is in the embedded list. It never returns an
// error.
func (e *English) Contains(word string) (bool, error) {
	_, ok := e.words[Fold(word)]
	return ok, nil
}

// Len returns the number of words in the embedded list
func (e *English) Len() int {
	return len(e.words)
}
