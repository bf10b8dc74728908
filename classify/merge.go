package classify

import (
	"math"

	"github.com/tsawler/outliner/model"
)

// MergeConfig holds configuration for consecutive-fragment merging
type MergeConfig struct {
	// LineGapFactor is the maximum vertical gap between two fragments,
	// expressed as a multiple of the first fragment's font size, for them
	// to be treated as lines of the same heading
	// Default: 1.5
	LineGapFactor float64

	// MaxSizeDelta is the maximum font-size difference, in points, between
	// fragments merged together
	// Default: 0.5
	MaxSizeDelta float64
}

// DefaultMergeConfig returns sensible default configuration
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		LineGapFactor: 1.5,
		MaxSizeDelta:  0.5,
	}
}

// FragmentMerger joins consecutive fragments that share formatting and sit
// within a line's distance of each other. Extractors emit a heading wrapped
// over two lines as two fragments; downstream stages expect it as one.
type FragmentMerger struct {
	config MergeConfig
}

// NewFragmentMerger creates a merger with default configuration
func NewFragmentMerger() *FragmentMerger {
	return NewFragmentMergerWithConfig(DefaultMergeConfig())
}

// NewFragmentMergerWithConfig creates a merger with custom configuration
func NewFragmentMergerWithConfig(config MergeConfig) *FragmentMerger {
	if config.LineGapFactor <= 0 {
		config.LineGapFactor = DefaultMergeConfig().LineGapFactor
	}
	if config.MaxSizeDelta < 0 {
		config.MaxSizeDelta = DefaultMergeConfig().MaxSizeDelta
	}
	return &FragmentMerger{config: config}
}

// Merge returns a copy of doc with qualifying consecutive fragments joined.
// Fragments merge only within a page, in extraction order, and only while
// style flags match, font sizes agree within MaxSizeDelta, and the vertical
// gap from the previous fragment's bottom to the next one's top is at most
// LineGapFactor times the font size. A merged fragment keeps the first
// piece's index, font and size; its box is the union and its text joins the
// pieces with overlapping boundaries collapsed.
func (m *FragmentMerger) Merge(doc model.Document) model.Document {
	out := model.Document{Pages: make([]model.Page, len(doc.Pages))}
	for i, page := range doc.Pages {
		out.Pages[i] = model.Page{Number: page.Number, Width: page.Width, Height: page.Height}
		for _, frag := range page.Fragments {
			n := len(out.Pages[i].Fragments)
			if n > 0 && m.mergeable(out.Pages[i].Fragments[n-1], frag) {
				out.Pages[i].Fragments[n-1] = m.join(out.Pages[i].Fragments[n-1], frag)
				continue
			}
			out.Pages[i].Fragments = append(out.Pages[i].Fragments, frag)
		}
	}
	return out
}

// mergeable reports whether next continues prev as part of the same heading
func (m *FragmentMerger) mergeable(prev, next model.TextFragment) bool {
	if prev.Bold != next.Bold || prev.Italic != next.Italic {
		return false
	}
	if math.Abs(prev.FontSize-next.FontSize) > m.config.MaxSizeDelta {
		return false
	}
	gap := prev.BBox.Bottom() - next.BBox.Top()
	return gap <= m.config.LineGapFactor*prev.FontSize
}

// join folds next into prev, keeping prev's identity
func (m *FragmentMerger) join(prev, next model.TextFragment) model.TextFragment {
	prev.Text = mergeOverlap(prev.Text, next.Text)
	prev.BBox = unionBBox(prev.BBox, next.BBox)
	return prev
}

// unionBBox returns the smallest box containing both a and b
func unionBBox(a, b model.BBox) model.BBox {
	left := math.Min(a.Left(), b.Left())
	bottom := math.Min(a.Bottom(), b.Bottom())
	right := math.Max(a.Right(), b.Right())
	top := math.Max(a.Top(), b.Top())
	return model.NewBBoxFromCorners(left, bottom, right, top)
}
