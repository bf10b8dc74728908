package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExtractionIncomplete indicates the extraction collaborator failed to
// supply required metadata (font size, bounding box) for one or more
// fragments. Documents failing this check are skipped; the error is surfaced
// per document and never aborts a batch.
var ErrExtractionIncomplete = errors.New("model: extractor did not supply required fragment metadata")

// TextFragment represents one extracted line or run of text with its font and
// position metadata. Fragments are immutable once produced by the extractor.
type TextFragment struct {
	// Text is the fragment's text content
	Text string

	// FontName is the name of the font as reported by the extractor
	FontName string

	// FontSize is the font size in points
	FontSize float64

	// Bold and Italic are the style flags derived from the font
	Bold   bool
	Italic bool

	// BBox is the fragment's bounding box in page coordinates (Y up)
	BBox BBox

	// Page is the 1-based page number the fragment appears on
	Page int

	// Index is the fragment's ordinal in extraction order. Extractors emit
	// fragments top-to-bottom per page, so (Page, Index) is document order
	// and serves as the stable tie-break throughout the pipeline.
	Index int
}

// WordCount returns the number of whitespace-separated words in the fragment
func (f TextFragment) WordCount() int {
	return len(strings.Fields(f.Text))
}

// Page holds the fragments of a single page along with the page dimensions
// reported by the extractor. Dimensions may be zero when the extractor cannot
// supply them, in which case margin-band filtering is skipped for the page.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions in points (may be zero)
	Width  float64
	Height float64

	// Fragments are the page's text fragments in extraction order
	Fragments []TextFragment
}

// Document is the complete fragment input for one classification run.
type Document struct {
	// Pages in ascending page-number order
	Pages []Page
}

// FragmentCount returns the total number of fragments across all pages
func (d Document) FragmentCount() int {
	n := 0
	for _, page := range d.Pages {
		n += len(page.Fragments)
	}
	return n
}

// Fragments returns all fragments in document order as a single slice
func (d Document) Fragments() []TextFragment {
	out := make([]TextFragment, 0, d.FragmentCount())
	for _, page := range d.Pages {
		out = append(out, page.Fragments...)
	}
	return out
}

// Validate checks the extraction collaborator's contract: every fragment must
// carry a positive font size, a non-degenerate bounding box, and a valid page
// number. The first violation is returned wrapped around
// ErrExtractionIncomplete.
func (d Document) Validate() error {
	for _, page := range d.Pages {
		for _, frag := range page.Fragments {
			if frag.Page < 1 {
				return fmt.Errorf("fragment %d: page number %d: %w", frag.Index, frag.Page, ErrExtractionIncomplete)
			}
			if frag.FontSize <= 0 {
				return fmt.Errorf("page %d fragment %d: missing font size: %w", frag.Page, frag.Index, ErrExtractionIncomplete)
			}
			if frag.BBox.Width < 0 || frag.BBox.Height < 0 {
				return fmt.Errorf("page %d fragment %d: degenerate bounding box: %w", frag.Page, frag.Index, ErrExtractionIncomplete)
			}
			if frag.BBox.IsZero() {
				return fmt.Errorf("page %d fragment %d: missing bounding box: %w", frag.Page, frag.Index, ErrExtractionIncomplete)
			}
		}
	}
	return nil
}

// NewDocument assembles fragments into a Document, grouping them by page
// number and assigning extraction-order indices. Fragments must already be in
// extraction order (ascending page, top-to-bottom). Empty-text fragments are
// dropped. Page dimensions are left zero; callers that know them should set
// them on the returned pages.
func NewDocument(fragments []TextFragment) Document {
	var doc Document
	byNumber := make(map[int]int)

	for i, frag := range fragments {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		frag.Index = i
		idx, ok := byNumber[frag.Page]
		if !ok {
			doc.Pages = append(doc.Pages, Page{Number: frag.Page})
			idx = len(doc.Pages) - 1
			byNumber[frag.Page] = idx
		}
		doc.Pages[idx].Fragments = append(doc.Pages[idx].Fragments, frag)
	}

	return doc
}
