package classify

// Config aggregates the configuration of every pipeline stage. All tuning
// parameters are explicit here rather than hidden constants so behavior is
// reproducible and testable under alternate settings.
type Config struct {
	// Filter configures header/footer and boilerplate removal
	Filter FilterConfig

	// Merge configures joining of multi-line headings
	Merge MergeConfig

	// Group configures formatting-profile quantization
	Group GroupConfig

	// Score configures the priority scorer's weights
	Score ScoreConfig

	// Hierarchy configures score-bracket level assignment
	Hierarchy HierarchyConfig

	// Validate configures heading-shape validation
	Validate ValidateConfig

	// Title configures title candidate selection
	Title TitleConfig

	// DuplicateLimit is the maximum number of times a normalized heading
	// text may occur before all its occurrences are dropped as decorative
	// repetition that survived filtering.
	// Default: 5
	DuplicateLimit int
}

// DefaultConfig returns the default configuration for all pipeline stages
func DefaultConfig() Config {
	return Config{
		Filter:         DefaultFilterConfig(),
		Merge:          DefaultMergeConfig(),
		Group:          DefaultGroupConfig(),
		Score:          DefaultScoreConfig(),
		Hierarchy:      DefaultHierarchyConfig(),
		Validate:       DefaultValidateConfig(),
		Title:          DefaultTitleConfig(),
		DuplicateLimit: 5,
	}
}
