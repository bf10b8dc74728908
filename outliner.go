// Package outliner provides a fluent API for turning extracted document text
// into a title and a hierarchical outline of headings.
//
// Basic usage:
//
//	result, err := outliner.Open("document.json").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.OpenPDF("report.pdf").
//	    WithConfig(cfg).
//	    WithDictionary(dict.NewEnglish()).
//	    Outline()
//
// For advanced use cases, the lower-level classify package is also available.
package outliner

import (
	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/dict"
	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/model"
)

// Classifier is the fluent entry point. Configure it with the With methods,
// then call Outline to run classification. The zero value is not usable;
// create one with Open, OpenPDF, FromSource or FromDocument.
type Classifier struct {
	source extract.Source
	config classify.Config
	dict   dict.Dictionary
	noDict bool
}

// Open creates a Classifier reading the fragment interchange JSON at path.
//
// Example:
//
//	result, err := outliner.Open("document.json").Outline()
func Open(path string) *Classifier {
	return FromSource(extract.NewJSONFile(path))
}

// OpenPDF creates a Classifier extracting directly from the PDF at path.
// Direct PDF extraction is best-effort; see extract.PDF for its limits.
func OpenPDF(path string) *Classifier {
	return FromSource(extract.NewPDF(path))
}

// FromSource creates a Classifier over any fragment source
func FromSource(src extract.Source) *Classifier {
	return &Classifier{
		source: src,
		config: classify.DefaultConfig(),
	}
}

// FromDocument creates a Classifier over an already-extracted document
func FromDocument(doc model.Document) *Classifier {
	return FromSource(extract.SourceFunc(func() (model.Document, error) {
		return doc, nil
	}))
}

// WithConfig replaces the default pipeline configuration
func (c *Classifier) WithConfig(config classify.Config) *Classifier {
	c.config = config
	return c
}

// WithDictionary replaces the embedded English dictionary used during
// heading validation. Pass nil to disable dictionary checks entirely.
func (c *Classifier) WithDictionary(d dict.Dictionary) *Classifier {
	c.dict = d
	c.noDict = d == nil
	return c
}

// Outline extracts the document and runs the classification pipeline,
// returning the title and outline. Extraction failures and structurally
// invalid documents are reported as errors; a valid document always yields
// a Result, possibly with no title and an empty outline.
func (c *Classifier) Outline() (*Result, error) {
	doc, err := c.source.Document()
	if err != nil {
		return nil, err
	}

	d := c.dict
	if d == nil && !c.noDict {
		d = dict.NewEnglish()
	}
	classification, err := classify.NewPipelineWithDictionary(c.config, d).Classify(doc)
	if err != nil {
		return nil, err
	}
	return newResult(classification), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.json").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
