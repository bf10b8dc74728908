package classify

import "sort"

// ScoreConfig holds the priority scorer's weights. The score of a group is
//
//	FontRankWeight*rank + BoldBonus + ItalicBonus +
//	IndentWeight*indentScore - WordCountPenalty*wordPenalty
//
// where rank is the percentile rank of the group's mean font size among all
// groups (largest size = 1), indentScore is 1 for the leftmost indent bucket
// decreasing linearly to 0 for the rightmost, and wordPenalty grows linearly
// with the group's mean word count up to WordCountCap.
type ScoreConfig struct {
	// FontRankWeight scales the font-size percentile rank. It is the
	// dominant term: a larger font should outrank style bonuses.
	// Default: 20
	FontRankWeight float64

	// BoldBonus is added when the profile is bold
	// Default: 5
	BoldBonus float64

	// ItalicBonus is added when the profile is italic
	// Default: 3
	ItalicBonus float64

	// IndentWeight scales the indent score; flush-left text scores highest
	// since headings are typically less indented than body text
	// Default: 5
	IndentWeight float64

	// WordCountPenalty scales the penalty for paragraph-like groups whose
	// fragments average many words
	// Default: 8
	WordCountPenalty float64

	// WordCountCap is the mean word count at which the penalty saturates
	// Default: 12
	WordCountCap float64
}

// DefaultScoreConfig returns sensible default configuration
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		FontRankWeight:   20,
		BoldBonus:        5,
		ItalicBonus:      3,
		IndentWeight:     5,
		WordCountPenalty: 8,
		WordCountCap:     12,
	}
}

// ScoredGroup is a formatting group with its computed priority score
type ScoredGroup struct {
	*Group

	// Score is the heading-likelihood score. It is a pure function of the
	// group's profile and the document-wide font-size distribution, so
	// re-scoring the same input is deterministic.
	Score float64
}

// Scorer computes priority scores for formatting groups
type Scorer struct {
	config ScoreConfig
	// indentBuckets mirrors the grouper's bucket count for the indent score
	indentBuckets int
}

// NewScorer creates a scorer with default configuration
func NewScorer() *Scorer {
	return NewScorerWithConfig(DefaultScoreConfig(), DefaultGroupConfig().IndentBuckets)
}

// NewScorerWithConfig creates a scorer with custom weights. indentBuckets
// must match the grouper's bucket count so indent scores are normalized.
func NewScorerWithConfig(config ScoreConfig, indentBuckets int) *Scorer {
	if indentBuckets < 1 {
		indentBuckets = 1
	}
	return &Scorer{config: config, indentBuckets: indentBuckets}
}

// Score computes the priority score of every group. The input order is
// preserved; scores are attached, not sorted.
func (s *Scorer) Score(groups []*Group) []*ScoredGroup {
	ranks := fontRanks(groups)

	scored := make([]*ScoredGroup, len(groups))
	for i, grp := range groups {
		score := s.config.FontRankWeight * ranks[i]
		if grp.Profile.Bold {
			score += s.config.BoldBonus
		}
		if grp.Profile.Italic {
			score += s.config.ItalicBonus
		}
		score += s.config.IndentWeight * s.indentScore(grp.Profile.IndentBucket)
		score -= s.config.WordCountPenalty * s.wordPenalty(grp.MeanWordCount())

		scored[i] = &ScoredGroup{Group: grp, Score: score}
	}
	return scored
}

// indentScore maps bucket 0 (flush left) to 1.0 and the rightmost bucket to 0
func (s *Scorer) indentScore(bucket int) float64 {
	if s.indentBuckets <= 1 {
		return 1.0
	}
	score := 1.0 - float64(bucket)/float64(s.indentBuckets-1)
	if score < 0 {
		return 0
	}
	return score
}

// wordPenalty maps a mean word count to [0,1], saturating at WordCountCap
func (s *Scorer) wordPenalty(meanWords float64) float64 {
	limit := s.config.WordCountCap
	if limit <= 0 {
		return 0
	}
	penalty := meanWords / limit
	if penalty > 1 {
		return 1
	}
	return penalty
}

// fontRanks computes the percentile rank of each group's mean font size
// among all groups: the largest size ranks 1.0, the smallest 0.0, and equal
// sizes share a rank.
func fontRanks(groups []*Group) []float64 {
	ranks := make([]float64, len(groups))
	if len(groups) == 0 {
		return ranks
	}
	if len(groups) == 1 {
		ranks[0] = 1.0
		return ranks
	}

	sizes := make([]float64, len(groups))
	for i, grp := range groups {
		sizes[i] = grp.MeanFontSize
	}
	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)

	for i, size := range sizes {
		// Number of groups with a strictly smaller mean size.
		below := sort.SearchFloat64s(sorted, size)
		ranks[i] = float64(below) / float64(len(groups)-1)
	}
	return ranks
}

// SortByScore returns the groups sorted by descending score, breaking ties
// by first-occurrence order. The input slice is not modified.
func SortByScore(groups []*ScoredGroup) []*ScoredGroup {
	sorted := make([]*ScoredGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
