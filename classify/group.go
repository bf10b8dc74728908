package classify

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// GroupConfig holds configuration for formatting-profile quantization
type GroupConfig struct {
	// FontSizeQuantum is the bucket width for font size quantization,
	// absorbing sub-point rendering noise
	// Default: 0.5
	FontSizeQuantum float64

	// IndentBuckets is the number of quantile buckets the observed left
	// edges are divided into
	// Default: 4
	IndentBuckets int
}

// DefaultGroupConfig returns sensible default configuration
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		FontSizeQuantum: 0.5,
		IndentBuckets:   4,
	}
}

// FormattingProfile is the quantization key fragments are clustered by.
// It has value equality and is usable as a map key.
type FormattingProfile struct {
	// FontSize is the quantized font size
	FontSize float64

	// Bold and Italic are the profile's style flags
	Bold   bool
	Italic bool

	// IndentBucket is the quantile bucket of the left edge (0 = leftmost)
	IndentBucket int
}

// Group is a cluster of fragments sharing a formatting profile, with
// aggregate statistics. Groups are immutable once created.
type Group struct {
	// Profile is the shared quantization key
	Profile FormattingProfile

	// Fragments are the member fragments in document order
	Fragments []model.TextFragment

	// MeanFontSize is the mean of the members' raw (unquantized) font sizes
	MeanFontSize float64

	// MinPage and MaxPage are the first and last page the group appears on
	MinPage int
	MaxPage int
}

// MeanWordCount returns the average word count of the group's fragments
func (g *Group) MeanWordCount() float64 {
	if len(g.Fragments) == 0 {
		return 0
	}
	total := 0
	for _, frag := range g.Fragments {
		total += frag.WordCount()
	}
	return float64(total) / float64(len(g.Fragments))
}

// OnSinglePage reports whether every fragment of the group is on one page
func (g *Group) OnSinglePage() bool {
	return g.MinPage == g.MaxPage
}

// Grouper clusters fragments into formatting-profile groups
type Grouper struct {
	config GroupConfig
}

// NewGrouper creates a grouper with default configuration
func NewGrouper() *Grouper {
	return &Grouper{config: DefaultGroupConfig()}
}

// NewGrouperWithConfig creates a grouper with custom configuration
func NewGrouperWithConfig(config GroupConfig) *Grouper {
	return &Grouper{config: config}
}

// Group clusters the document's fragments by formatting profile. Fragments
// with an identical profile form one group regardless of page. Groups are
// returned in order of their first occurrence so downstream iteration is
// deterministic.
func (g *Grouper) Group(doc model.Document) []*Group {
	boundaries := g.indentBoundaries(doc)

	var groups []*Group
	index := make(map[FormattingProfile]int)

	for _, page := range doc.Pages {
		for _, frag := range page.Fragments {
			profile := FormattingProfile{
				FontSize:     g.quantizeSize(frag.FontSize),
				Bold:         frag.Bold,
				Italic:       frag.Italic,
				IndentBucket: indentBucket(frag.BBox.Left(), boundaries),
			}

			idx, ok := index[profile]
			if !ok {
				groups = append(groups, &Group{Profile: profile, MinPage: frag.Page, MaxPage: frag.Page})
				idx = len(groups) - 1
				index[profile] = idx
			}

			grp := groups[idx]
			grp.Fragments = append(grp.Fragments, frag)
			if frag.Page < grp.MinPage {
				grp.MinPage = frag.Page
			}
			if frag.Page > grp.MaxPage {
				grp.MaxPage = frag.Page
			}
		}
	}

	for _, grp := range groups {
		total := 0.0
		for _, frag := range grp.Fragments {
			total += frag.FontSize
		}
		grp.MeanFontSize = total / float64(len(grp.Fragments))
	}

	return groups
}

// quantizeSize rounds a font size to the nearest quantum
func (g *Grouper) quantizeSize(size float64) float64 {
	q := g.config.FontSizeQuantum
	if q <= 0 {
		return size
	}
	return math.Round(size/q) * q
}

// indentBoundaries computes the quantile boundaries of the document's
// observed left-edge X coordinates. With n buckets there are n-1 boundaries.
func (g *Grouper) indentBoundaries(doc model.Document) []float64 {
	buckets := g.config.IndentBuckets
	if buckets < 2 {
		return nil
	}

	var edges []float64
	for _, page := range doc.Pages {
		for _, frag := range page.Fragments {
			edges = append(edges, frag.BBox.Left())
		}
	}
	if len(edges) == 0 {
		return nil
	}
	sort.Float64s(edges)

	boundaries := make([]float64, 0, buckets-1)
	for i := 1; i < buckets; i++ {
		idx := i * len(edges) / buckets
		if idx >= len(edges) {
			idx = len(edges) - 1
		}
		boundaries = append(boundaries, edges[idx])
	}
	return boundaries
}

// indentBucket returns the bucket index for a left edge: the number of
// boundaries strictly below it.
func indentBucket(left float64, boundaries []float64) int {
	bucket := 0
	for _, b := range boundaries {
		if left > b {
			bucket++
		}
	}
	return bucket
}
