package outliner

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/dict"
	"github.com/tsawler/outliner/extract"
)

// BatchItem is one document in a batch run
type BatchItem struct {
	// Name identifies the document in results and logs, typically its
	// file name
	Name string

	// Source supplies the document's fragments
	Source extract.Source
}

// BatchResult is the outcome for one batch item. Exactly one of Result and
// Err is set: a document that fails extraction or validation carries its
// error here without affecting the rest of the batch.
type BatchResult struct {
	Name   string
	Result *Result
	Err    error
}

// Batch classifies many documents concurrently over a bounded worker pool.
// The classification pipeline itself is deterministic per document, so
// running documents in parallel never changes any individual result.
type Batch struct {
	workers int
	config  classify.Config
	dict    dict.Dictionary
	logger  *slog.Logger
}

// NewBatch creates a batch runner with the given worker count. Counts below
// one are treated as one.
func NewBatch(workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{
		workers: workers,
		config:  classify.DefaultConfig(),
		logger:  slog.Default(),
	}
}

// WithConfig replaces the default pipeline configuration
func (b *Batch) WithConfig(config classify.Config) *Batch {
	b.config = config
	return b
}

// WithDictionary sets the dictionary shared across the batch's documents.
// The pipeline layers a per-document cache on top, so a shared dictionary
// only needs to be safe for concurrent Contains calls.
func (b *Batch) WithDictionary(d dict.Dictionary) *Batch {
	b.dict = d
	return b
}

// WithLogger replaces the default logger
func (b *Batch) WithLogger(logger *slog.Logger) *Batch {
	b.logger = logger
	return b
}

// Run classifies every item and returns results in item order. Documents
// are processed concurrently by the configured number of workers; a failure
// in one document is recorded in its BatchResult and does not stop the
// others. Cancelling the context abandons items not yet started, recording
// the context's error for them.
func (b *Batch) Run(ctx context.Context, items []BatchItem) []BatchResult {
	runID := uuid.NewString()
	logger := b.logger.With("run_id", runID)
	logger.Info("batch started", "documents", len(items), "workers", b.workers)

	d := b.dict
	if d == nil {
		d = dict.NewEnglish()
	}

	results := make([]BatchResult, len(items))
	work := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				item := items[i]
				result, err := FromSource(item.Source).
					WithConfig(b.config).
					WithDictionary(d).
					Outline()
				results[i] = BatchResult{Name: item.Name, Result: result, Err: err}
				if err != nil {
					logger.Warn("document skipped", "name", item.Name, "error", err)
					continue
				}
				logger.Info("document classified",
					"name", item.Name,
					"title", result.Title,
					"headings", len(result.Outline))
			}
		}()
	}

	var cancelled error
dispatch:
	for i := range items {
		if err := ctx.Err(); err != nil {
			cancelled = err
			for j := i; j < len(items); j++ {
				results[j] = BatchResult{Name: items[j].Name, Err: err}
			}
			break dispatch
		}
		select {
		case work <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			for j := i; j < len(items); j++ {
				results[j] = BatchResult{Name: items[j].Name, Err: ctx.Err()}
			}
			break dispatch
		}
	}
	close(work)
	wg.Wait()

	if cancelled != nil {
		logger.Warn("batch cancelled", "error", cancelled)
	} else {
		logger.Info("batch finished", "documents", len(items))
	}
	return results
}
