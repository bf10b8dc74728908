// Package classify implements the heading classification pipeline that turns
// formatted text fragments into a document outline.
//
// The pipeline runs a fixed sequence of stages, each consuming the previous
// stage's output in full:
//
//   - [FragmentFilter] - removes headers, footers, and repeated boilerplate
//   - [FragmentMerger] - joins headings wrapped over multiple lines
//   - [Grouper] - clusters fragments into formatting profiles
//   - [Scorer] - assigns each profile group a heading-likelihood score
//   - [TitleSelector] - picks the single best title candidate
//   - [HierarchyAssigner] - maps score brackets to heading levels
//   - [CorrectHierarchy] - repairs invalid level sequences
//
// The [Pipeline] orchestrates the stages for one document:
//
//	pipeline := classify.NewPipeline()
//	result, err := pipeline.Classify(doc)
//
// # Configuration
//
// Every tuning parameter (scoring weights, bracket width, margin fractions,
// repetition thresholds) lives in [Config] with documented defaults:
//
//	config := classify.DefaultConfig()
//	config.Score.BoldBonus = 8
//	pipeline := classify.NewPipelineWithConfig(config)
//
// # Determinism
//
// Classification is a pure function of its input: scores depend only on
// profile attributes and the document-wide font-size distribution, ordering
// is by explicit sort keys (page, extraction index; score descending for
// brackets), and no state crosses document boundaries. Running the pipeline
// twice on the same fragments yields identical output, and a single Pipeline
// is safe for concurrent use across documents.
package classify
