package classify

import "testing"

func TestCorrectHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		levels   []HeadingLevel
		expected []HeadingLevel
	}{
		{"already monotonic", []HeadingLevel{1, 2, 3, 2}, []HeadingLevel{1, 2, 3, 2}},
		{"skipped level", []HeadingLevel{1, 3, 2}, []HeadingLevel{1, 2, 2}},
		{"starts deep", []HeadingLevel{3, 1, 2}, []HeadingLevel{1, 1, 2}},
		{"deep jump", []HeadingLevel{1, 2, 6}, []HeadingLevel{1, 2, 3}},
		{"repeated clamping", []HeadingLevel{2, 4, 4, 2}, []HeadingLevel{1, 2, 3, 2}},
		{"single", []HeadingLevel{4}, []HeadingLevel{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := make([]HeadingCandidate, len(tt.levels))
			for i, level := range tt.levels {
				candidates[i] = HeadingCandidate{Level: level}
			}

			got := CorrectHierarchy(candidates)
			for i, want := range tt.expected {
				if got[i].Level != want {
					t.Errorf("%v: position %d = %v, want %v", tt.levels, i, got[i].Level, want)
				}
			}
		})
	}
}

func TestCorrectHierarchyEmpty(t *testing.T) {
	if got := CorrectHierarchy(nil); len(got) != 0 {
		t.Errorf("CorrectHierarchy(nil) = %v, want empty", got)
	}
}
