package classify

import (
	"fmt"
	"sort"
)

// HierarchyConfig holds configuration for score-bracket level assignment
type HierarchyConfig struct {
	// BracketWidth is the score interval mapped to a single heading level:
	// the strongest group anchors H1 and every full BracketWidth of score
	// below it drops one level.
	// Default: 10
	BracketWidth float64

	// MaxDepth is the deepest heading level produced; groups bracketed
	// below it are discarded as body text.
	// Default: 6
	MaxDepth int

	// MaxBracketEntries is the most candidates a single level may hold.
	// A bracket exceeding it is body text that happened to score well, not
	// a heading tier, and all its candidates are dropped. Zero or negative
	// disables the cap.
	// Default: 40
	MaxBracketEntries int
}

// DefaultHierarchyConfig returns sensible default configuration
func DefaultHierarchyConfig() HierarchyConfig {
	return HierarchyConfig{
		BracketWidth:      10,
		MaxDepth:          6,
		MaxBracketEntries: 40,
	}
}

// HeadingLevel is an outline depth, H1 (strongest) through H6
type HeadingLevel int

// String returns the conventional label for the level, e.g. "H1"
func (l HeadingLevel) String() string {
	return fmt.Sprintf("H%d", int(l))
}

// MarshalJSON encodes the level as its label string
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// HeadingCandidate is a single fragment promoted to a heading, carrying the
// level its group was bracketed into
type HeadingCandidate struct {
	Text  string
	Page  int
	Level HeadingLevel
	Score float64

	// Index is the fragment's extraction ordinal within its page, used to
	// keep document order among candidates on the same page
	Index int
}

// HierarchyAssigner maps scored groups into heading levels by score bracket
type HierarchyAssigner struct {
	config HierarchyConfig
}

// NewHierarchyAssigner creates an assigner with default configuration
func NewHierarchyAssigner() *HierarchyAssigner {
	return NewHierarchyAssignerWithConfig(DefaultHierarchyConfig())
}

// NewHierarchyAssignerWithConfig creates an assigner with custom configuration
func NewHierarchyAssignerWithConfig(config HierarchyConfig) *HierarchyAssigner {
	if config.BracketWidth <= 0 {
		config.BracketWidth = DefaultHierarchyConfig().BracketWidth
	}
	if config.MaxDepth < 1 {
		config.MaxDepth = DefaultHierarchyConfig().MaxDepth
	}
	return &HierarchyAssigner{config: config}
}

// Assign brackets the given groups into heading levels and expands them into
// per-fragment candidates in document order. A group participates only when
// at least one of its fragments passes heading-shape validation; the bracket
// anchor is the highest score among participating groups. Candidates are
// emitted for the passing fragments only, sorted by (page, extraction order).
func (a *HierarchyAssigner) Assign(groups []*ScoredGroup, validator *Validator) []HeadingCandidate {
	type eligible struct {
		group   *ScoredGroup
		passing []int // indices into group.Fragments
	}

	var kept []eligible
	for _, g := range groups {
		var passing []int
		for i, frag := range g.Fragments {
			if validator.ValidHeading(frag.Text) {
				passing = append(passing, i)
			}
		}
		if len(passing) > 0 {
			kept = append(kept, eligible{group: g, passing: passing})
		}
	}
	if len(kept) == 0 {
		return nil
	}

	maxScore := kept[0].group.Score
	for _, e := range kept[1:] {
		if e.group.Score > maxScore {
			maxScore = e.group.Score
		}
	}

	var candidates []HeadingCandidate
	for _, e := range kept {
		level := a.Level(maxScore, e.group.Score)
		if int(level) > a.config.MaxDepth {
			continue
		}
		for _, i := range e.passing {
			frag := e.group.Fragments[i]
			candidates = append(candidates, HeadingCandidate{
				Text:  frag.Text,
				Page:  frag.Page,
				Level: level,
				Score: e.group.Score,
				Index: frag.Index,
			})
		}
	}

	candidates = a.dropCrowdedBrackets(candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Page != candidates[j].Page {
			return candidates[i].Page < candidates[j].Page
		}
		return candidates[i].Index < candidates[j].Index
	})
	return candidates
}

// dropCrowdedBrackets removes every candidate of any level whose population
// exceeds MaxBracketEntries
func (a *HierarchyAssigner) dropCrowdedBrackets(candidates []HeadingCandidate) []HeadingCandidate {
	if a.config.MaxBracketEntries <= 0 {
		return candidates
	}
	perLevel := make(map[HeadingLevel]int)
	for _, c := range candidates {
		perLevel[c.Level]++
	}
	kept := candidates[:0]
	for _, c := range candidates {
		if perLevel[c.Level] > a.config.MaxBracketEntries {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// Level brackets a score relative to the anchor: scores within one
// BracketWidth of the anchor are H1, the next BracketWidth down H2, and so
// on. The returned level may exceed MaxDepth; callers discard those.
func (a *HierarchyAssigner) Level(anchor, score float64) HeadingLevel {
	if score >= anchor {
		return 1
	}
	return HeadingLevel(int((anchor-score)/a.config.BracketWidth) + 1)
}
