package extract

import "github.com/tsawler/outliner/model"

// Source produces a document from some external representation. The pipeline
// consumes documents, not files, so any extractor that can supply fragments
// with font and position metadata can feed it through this interface.
type Source interface {
	// Document extracts and returns the document. An extractor that cannot
	// supply the required metadata wraps model.ErrExtractionIncomplete.
	Document() (model.Document, error)
}

// SourceFunc adapts a plain function to the Source interface
type SourceFunc func() (model.Document, error)

// Document calls f
func (f SourceFunc) Document() (model.Document, error) {
	return f()
}
