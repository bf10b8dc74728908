package dict

import "sync"

// Memo caches lookups in front of another Dictionary. Tokens recur heavily
// within a document, so wrapping the backend bounds redundant external
// calls. A Memo is created fresh per document and discarded at the end of
// its run; it must never be shared across documents.
type Memo struct {
	dict Dictionary

	mu     sync.Mutex
	known  map[string]bool
	hits   int
	misses int
}

// NewMemo creates a memoizing wrapper around d
func NewMemo(d Dictionary) *Memo {
	return &Memo{
		dict:  d,
		known: make(map[string]bool),
	}
}

// Contains reports whether word is a valid word, consulting the backend at
// most once per distinct folded token. Backend errors are not cached so a
// transient failure does not poison the rest of the run.
func (m *Memo) Contains(word string) (bool, error) {
	key := Fold(word)

	m.mu.Lock()
	if ok, cached := m.known[key]; cached {
		m.hits++
		m.mu.Unlock()
		return ok, nil
	}
	m.misses++
	m.mu.Unlock()

	ok, err := m.dict.Contains(key)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	m.known[key] = ok
	m.mu.Unlock()
	return ok, nil
}

// Size returns the number of cached tokens
func (m *Memo) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.known)
}

// HitRate returns the fraction of lookups served from the cache
func (m *Memo) HitRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := m.hits + m.misses
	if total == 0 {
		return 0
	}
	return float64(m.hits) / float64(total)
}
