package classify

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makeStyledFragment creates a fragment with explicit style for group and
// score tests
func makeStyledFragment(text string, page int, size float64, bold, italic bool, x, y float64) model.TextFragment {
	return model.TextFragment{
		Text:     text,
		FontSize: size,
		Bold:     bold,
		Italic:   italic,
		BBox:     model.NewBBox(x, y, 200, size),
		Page:     page,
	}
}

func TestGroupByProfile(t *testing.T) {
	doc := model.NewDocument([]model.TextFragment{
		makeStyledFragment("Heading A", 1, 18, true, false, 72, 700),
		makeStyledFragment("body one", 1, 10, false, false, 72, 600),
		makeStyledFragment("Heading B", 2, 18, true, false, 72, 700),
		makeStyledFragment("body two", 2, 10, false, false, 72, 600),
	})

	groups := NewGrouper().Group(doc)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// First-occurrence order: the heading profile appears first.
	if len(groups[0].Fragments) != 2 || !groups[0].Profile.Bold {
		t.Errorf("first group = %+v, want the two bold 18pt headings", groups[0].Profile)
	}
	if groups[0].MinPage != 1 || groups[0].MaxPage != 2 {
		t.Errorf("heading group pages = [%d,%d], want [1,2]", groups[0].MinPage, groups[0].MaxPage)
	}
}

func TestGroupQuantizesNearbySizes(t *testing.T) {
	// Extractors report tiny per-glyph size jitter; 11.9 and 12.1 are the
	// same 12pt text.
	doc := model.NewDocument([]model.TextFragment{
		makeStyledFragment("line one", 1, 11.9, false, false, 72, 700),
		makeStyledFragment("line two", 1, 12.1, false, false, 72, 650),
	})

	groups := NewGrouper().Group(doc)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Profile.FontSize != 12 {
		t.Errorf("quantized size = %v, want 12", groups[0].Profile.FontSize)
	}
	if groups[0].MeanFontSize != 12 {
		t.Errorf("MeanFontSize = %v, want 12 (mean of raw sizes)", groups[0].MeanFontSize)
	}
}

func TestGroupSeparatesStyles(t *testing.T) {
	doc := model.NewDocument([]model.TextFragment{
		makeStyledFragment("plain", 1, 12, false, false, 72, 700),
		makeStyledFragment("bold", 1, 12, true, false, 72, 650),
		makeStyledFragment("italic", 1, 12, false, true, 72, 600),
	})

	groups := NewGrouper().Group(doc)
	if len(groups) != 3 {
		t.Errorf("got %d groups, want 3 (one per style)", len(groups))
	}
}

func TestGroupIndentBuckets(t *testing.T) {
	// Half the lines flush left, half indented far right: they must land in
	// different buckets and therefore different groups.
	var frags []model.TextFragment
	for i := 0; i < 4; i++ {
		frags = append(frags, makeStyledFragment("flush line", 1, 12, false, false, 72, 700-float64(i)*20))
	}
	for i := 0; i < 4; i++ {
		frags = append(frags, makeStyledFragment("indented line", 1, 12, false, false, 300, 500-float64(i)*20))
	}

	groups := NewGrouper().Group(model.NewDocument(frags))
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Profile.IndentBucket >= groups[1].Profile.IndentBucket {
		t.Errorf("buckets = %d, %d; want flush-left bucket below indented bucket",
			groups[0].Profile.IndentBucket, groups[1].Profile.IndentBucket)
	}
}

func TestGroupMeanWordCount(t *testing.T) {
	g := &Group{Fragments: []model.TextFragment{
		{Text: "one two three"},
		{Text: "one"},
	}}
	if got := g.MeanWordCount(); got != 2 {
		t.Errorf("MeanWordCount() = %v, want 2", got)
	}
}

func TestGroupEmptyDocument(t *testing.T) {
	groups := NewGrouper().Group(model.Document{})
	if len(groups) != 0 {
		t.Errorf("got %d groups for empty document, want 0", len(groups))
	}
}
