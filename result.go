package outliner

import "github.com/tsawler/outliner/classify"

// Entry is one heading in the final outline
type Entry struct {
	// Level is the heading depth, H1 through H6
	Level classify.HeadingLevel `json:"level"`

	// Text is the heading text as it appears in the document
	Text string `json:"text"`

	// Page is the 1-based page the heading appears on
	Page int `json:"page"`
}

// Result is the output of classification: the document title, if one was
// found, and the heading outline in document order.
//
// Title is empty when the document has no detectable title; the JSON
// encoding omits the field in that case rather than emitting an empty
// string, so consumers can distinguish "untitled" from "titled with empty
// text". Outline is never nil: a document without headings marshals as an
// empty array, not null.
type Result struct {
	Title   string  `json:"title,omitempty"`
	Outline []Entry `json:"outline"`
}

// HasTitle reports whether a title was selected
func (r *Result) HasTitle() bool {
	return r.Title != ""
}

func newResult(c *classify.Classification) *Result {
	r := &Result{Outline: make([]Entry, 0, len(c.Outline))}
	if c.HasTitle {
		r.Title = c.Title
	}
	for _, e := range c.Outline {
		r.Outline = append(r.Outline, Entry{Level: e.Level, Text: e.Text, Page: e.Page})
	}
	return r
}
