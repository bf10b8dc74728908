package classify

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/outliner/model"
)

// FilterConfig holds configuration for fragment filtering
type FilterConfig struct {
	// TopMarginFraction is the fraction of page height from the top treated
	// as the header margin band
	// Default: 0.08
	TopMarginFraction float64

	// BottomMarginFraction is the fraction of page height from the bottom
	// treated as the footer margin band
	// Default: 0.08
	BottomMarginFraction float64

	// RepeatRatio is the minimum fraction of pages a normalized text must
	// recur on to be treated as a running header/footer/watermark
	// Default: 0.5
	RepeatRatio float64

	// MinRepeatPages is the minimum absolute page count for the repetition
	// rule; documents shorter than this never trigger it
	// Default: 3
	MinRepeatPages int

	// PositionTolerance is the maximum difference in relative vertical
	// position (y/pageHeight) for recurrences to count as the same position
	// Default: 0.04
	PositionTolerance float64
}

// DefaultFilterConfig returns sensible default configuration
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		TopMarginFraction:    0.08,
		BottomMarginFraction: 0.08,
		RepeatRatio:          0.5,
		MinRepeatPages:       3,
		PositionTolerance:    0.04,
	}
}

// FragmentFilter removes headers, footers, and repeated boilerplate from a
// document's fragments. It is a pure filter: fragments are dropped, never
// mutated, and order is preserved. Running the filter on its own output
// removes nothing further.
type FragmentFilter struct {
	config FilterConfig
}

// NewFragmentFilter creates a filter with default configuration
func NewFragmentFilter() *FragmentFilter {
	return &FragmentFilter{config: DefaultFilterConfig()}
}

// NewFragmentFilterWithConfig creates a filter with custom configuration
func NewFragmentFilterWithConfig(config FilterConfig) *FragmentFilter {
	return &FragmentFilter{config: config}
}

// occurrence records one sighting of a normalized text for repetition analysis
type occurrence struct {
	page      int
	ordinal   int // position in the flattened fragment sequence
	relativeY float64
}

// Filter returns a copy of doc with margin-band and repeated fragments
// removed. Pages are kept even when all their fragments are dropped so that
// page counts (and therefore repetition thresholds) are stable across runs.
func (f *FragmentFilter) Filter(doc model.Document) model.Document {
	bands := f.marginSurvivors(doc)
	repeated := f.repeatedOrdinals(doc, bands)

	out := model.Document{Pages: make([]model.Page, len(doc.Pages))}
	ordinal := 0
	for i, page := range doc.Pages {
		out.Pages[i] = model.Page{Number: page.Number, Width: page.Width, Height: page.Height}
		for _, frag := range page.Fragments {
			keep := bands[ordinal] && !repeated[ordinal]
			if keep {
				out.Pages[i].Fragments = append(out.Pages[i].Fragments, frag)
			}
			ordinal++
		}
	}
	return out
}

// marginSurvivors marks, per flattened fragment ordinal, whether the fragment
// lies outside the top/bottom margin bands of its page.
func (f *FragmentFilter) marginSurvivors(doc model.Document) []bool {
	keep := make([]bool, doc.FragmentCount())
	ordinal := 0

	for _, page := range doc.Pages {
		// The band is defined as a fraction of the reported page height.
		// Without a height there is no band, and deriving one from the
		// fragments themselves would shrink on every pass.
		height := page.Height

		for _, frag := range page.Fragments {
			inTop := height > 0 && frag.BBox.Bottom() >= height*(1-f.config.TopMarginFraction)
			inBottom := height > 0 && frag.BBox.Top() <= height*f.config.BottomMarginFraction
			keep[ordinal] = !inTop && !inBottom
			ordinal++
		}
	}
	return keep
}

// repeatedOrdinals finds fragments whose normalized text recurs at a similar
// relative position on at least the threshold number of pages. Only fragments
// surviving the margin bands participate; the two rules compose rather than
// double-count.
func (f *FragmentFilter) repeatedOrdinals(doc model.Document, bands []bool) map[int]bool {
	minPages := int(math.Ceil(f.config.RepeatRatio * float64(len(doc.Pages))))
	if minPages < f.config.MinRepeatPages {
		minPages = f.config.MinRepeatPages
	}

	groups := make(map[string][]occurrence)
	var order []string
	ordinal := 0

	for _, page := range doc.Pages {
		height := page.Height

		for _, frag := range page.Fragments {
			if !bands[ordinal] {
				ordinal++
				continue
			}
			key := NormalizeText(frag.Text)
			// Single characters are usually fragments of larger text, not
			// running headers, unless they look like a bare page number.
			if len(key) <= 2 && !strings.Contains(key, "#") {
				ordinal++
				continue
			}
			relY := 0.0
			if height > 0 {
				relY = frag.BBox.CenterY() / height
			}
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], occurrence{page: page.Number, ordinal: ordinal, relativeY: relY})
			ordinal++
		}
	}

	removed := make(map[int]bool)
	for _, key := range order {
		// Same text at unrelated positions (e.g. a heading repeating a
		// footer's words) must survive, so occurrences are clustered by
		// relative position and each cluster is judged independently.
		for _, cluster := range clusterByPosition(groups[key], f.config.PositionTolerance) {
			pages := make(map[int]bool)
			for _, occ := range cluster {
				pages[occ.page] = true
			}
			if len(pages) < minPages {
				continue
			}
			for _, occ := range cluster {
				removed[occ.ordinal] = true
			}
		}
	}
	return removed
}

// clusterByPosition segments occurrences into position clusters. Occurrences
// are sorted by relative Y and a new cluster starts whenever the distance to
// the current cluster's first member exceeds the tolerance. The segmentation
// is stable under removal of whole clusters, which keeps the filter
// idempotent.
func clusterByPosition(group []occurrence, tolerance float64) [][]occurrence {
	sorted := make([]occurrence, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].relativeY != sorted[j].relativeY {
			return sorted[i].relativeY < sorted[j].relativeY
		}
		return sorted[i].ordinal < sorted[j].ordinal
	})

	var clusters [][]occurrence
	for _, occ := range sorted {
		if len(clusters) == 0 {
			clusters = append(clusters, []occurrence{occ})
			continue
		}
		current := clusters[len(clusters)-1]
		if math.Abs(occ.relativeY-current[0].relativeY) <= tolerance {
			clusters[len(clusters)-1] = append(current, occ)
		} else {
			clusters = append(clusters, []occurrence{occ})
		}
	}
	return clusters
}

var (
	foldCaser    = cases.Fold()
	whitespaceRe = regexp.MustCompile(`\s+`)
	digitsRe     = regexp.MustCompile(`\d+`)
)

// NormalizeText produces the comparison key used for repetition detection:
// case-folded, whitespace-collapsed, with digit runs replaced by "#" so that
// "Confidential - Page 3" and "Confidential - Page 17" compare equal.
func NormalizeText(text string) string {
	text = foldCaser.String(strings.TrimSpace(text))
	text = whitespaceRe.ReplaceAllString(text, " ")
	return digitsRe.ReplaceAllString(text, "#")
}
