package classify

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// scoredGroup wraps a fragment list with a fixed score
func scoredGroup(score float64, frags ...model.TextFragment) *ScoredGroup {
	return &ScoredGroup{Group: &Group{Fragments: frags}, Score: score}
}

func headingFrag(text string, page, index int) model.TextFragment {
	return model.TextFragment{Text: text, FontSize: 12, Page: page, Index: index}
}

func TestHeadingLevelString(t *testing.T) {
	tests := []struct {
		level    HeadingLevel
		expected string
	}{
		{1, "H1"},
		{2, "H2"},
		{6, "H6"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("HeadingLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestHeadingLevelMarshalJSON(t *testing.T) {
	data, err := HeadingLevel(3).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if string(data) != `"H3"` {
		t.Errorf("MarshalJSON() = %s, want \"H3\"", data)
	}
}

func TestAssignBrackets(t *testing.T) {
	groups := []*ScoredGroup{
		scoredGroup(30, headingFrag("Top", 1, 0)),
		scoredGroup(25, headingFrag("Still top", 1, 1)),
		scoredGroup(19, headingFrag("Second", 2, 0)),
		scoredGroup(9, headingFrag("Third", 3, 0)),
	}

	validator := NewValidator(DefaultValidateConfig(), allowAll)
	candidates := NewHierarchyAssigner().Assign(groups, validator)

	want := []struct {
		text  string
		level HeadingLevel
	}{
		{"Top", 1},
		{"Still top", 1},
		{"Second", 2},
		{"Third", 3},
	}
	if len(candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(candidates), len(want))
	}
	for i, w := range want {
		if candidates[i].Text != w.text || candidates[i].Level != w.level {
			t.Errorf("candidate %d = (%q, %v), want (%q, %v)",
				i, candidates[i].Text, candidates[i].Level, w.text, w.level)
		}
	}
}

func TestAssignDiscardsBeyondMaxDepth(t *testing.T) {
	groups := []*ScoredGroup{
		scoredGroup(100, headingFrag("Top", 1, 0)),
		scoredGroup(20, headingFrag("Way down", 2, 0)),
	}

	validator := NewValidator(DefaultValidateConfig(), allowAll)
	candidates := NewHierarchyAssigner().Assign(groups, validator)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1 (deep group discarded)", len(candidates))
	}
	if candidates[0].Text != "Top" {
		t.Errorf("kept %q, want \"Top\"", candidates[0].Text)
	}
}

func TestAssignSkipsInvalidFragments(t *testing.T) {
	groups := []*ScoredGroup{
		scoredGroup(30,
			headingFrag("Real Heading", 1, 0),
			headingFrag("..........", 1, 1),
		),
		// Entire group fails validation: it must not anchor the brackets.
		scoredGroup(50, headingFrag("----------------", 1, 2)),
	}

	validator := NewValidator(DefaultValidateConfig(), allowAll)
	candidates := NewHierarchyAssigner().Assign(groups, validator)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Text != "Real Heading" || candidates[0].Level != 1 {
		t.Errorf("candidate = (%q, %v), want (\"Real Heading\", H1): anchor must come from valid groups only",
			candidates[0].Text, candidates[0].Level)
	}
}

func TestAssignDocumentOrder(t *testing.T) {
	groups := []*ScoredGroup{
		scoredGroup(20, headingFrag("Later", 3, 0), headingFrag("Earlier", 1, 5)),
		scoredGroup(28, headingFrag("First", 1, 2)),
	}

	validator := NewValidator(DefaultValidateConfig(), allowAll)
	candidates := NewHierarchyAssigner().Assign(groups, validator)

	wantOrder := []string{"First", "Earlier", "Later"}
	for i, text := range wantOrder {
		if candidates[i].Text != text {
			t.Errorf("candidate %d = %q, want %q", i, candidates[i].Text, text)
		}
	}
}

func TestAssignDropsCrowdedBracket(t *testing.T) {
	// A bracket holding more candidates than the cap is body text that
	// grouped and scored like a heading tier; all of it goes.
	crowded := scoredGroup(10,
		headingFrag("Filler one", 1, 0),
		headingFrag("Filler two", 1, 1),
		headingFrag("Filler three", 2, 0),
		headingFrag("Filler four", 2, 1),
	)
	groups := []*ScoredGroup{
		scoredGroup(30, headingFrag("Chapter", 1, 2)),
		crowded,
	}

	config := DefaultHierarchyConfig()
	config.MaxBracketEntries = 3
	validator := NewValidator(DefaultValidateConfig(), allowAll)
	candidates := NewHierarchyAssignerWithConfig(config).Assign(groups, validator)

	if len(candidates) != 1 || candidates[0].Text != "Chapter" {
		t.Errorf("candidates = %+v, want only the sparse bracket's heading", candidates)
	}

	// Disabling the cap keeps everything.
	config.MaxBracketEntries = 0
	candidates = NewHierarchyAssignerWithConfig(config).Assign(groups, validator)
	if len(candidates) != 5 {
		t.Errorf("got %d candidates with the cap disabled, want 5", len(candidates))
	}
}

func TestAssignEmpty(t *testing.T) {
	validator := NewValidator(DefaultValidateConfig(), allowAll)
	if got := NewHierarchyAssigner().Assign(nil, validator); len(got) != 0 {
		t.Errorf("Assign(nil) = %v, want empty", got)
	}
}
