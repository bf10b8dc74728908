package classify

import (
	"sort"

	"github.com/tsawler/outliner/dict"
	"github.com/tsawler/outliner/model"
)

// Classification is the result of running the pipeline over one document
type Classification struct {
	// Title is the selected document title; meaningful only when HasTitle
	// is true. A document can legitimately have no title.
	Title    string
	HasTitle bool

	// Outline is the heading hierarchy in document order. It is never nil;
	// a document with no detectable headings yields an empty slice.
	Outline []OutlineEntry
}

// OutlineEntry is a single heading in the final outline
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Pipeline runs the full classification sequence: filter boilerplate, join
// wrapped headings, group by formatting, score groups, pick a title,
// bracket the rest into heading
// levels, then validate and correct the outline. A Pipeline is safe for
// concurrent use; all per-document state lives in the Classify call.
type Pipeline struct {
	config Config
	dict   dict.Dictionary
}

// NewPipeline creates a pipeline with default configuration and the
// embedded English dictionary
func NewPipeline() *Pipeline {
	return NewPipelineWithDictionary(DefaultConfig(), dict.NewEnglish())
}

// NewPipelineWithConfig creates a pipeline with custom configuration and the
// embedded English dictionary
func NewPipelineWithConfig(config Config) *Pipeline {
	return NewPipelineWithDictionary(config, dict.NewEnglish())
}

// NewPipelineWithDictionary creates a pipeline with custom configuration and
// dictionary. d may be nil to disable dictionary-based validation.
func NewPipelineWithDictionary(config Config, d dict.Dictionary) *Pipeline {
	if config.DuplicateLimit <= 0 {
		config.DuplicateLimit = DefaultConfig().DuplicateLimit
	}
	return &Pipeline{config: config, dict: d}
}

// Classify runs the pipeline over doc. The only error condition is a
// document that fails structural validation; a valid document always
// produces a Classification, possibly with no title and an empty outline.
// Classify is deterministic: the same document and configuration always
// yield the same result.
func (p *Pipeline) Classify(doc model.Document) (*Classification, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	result := &Classification{Outline: []OutlineEntry{}}
	if doc.FragmentCount() == 0 {
		return result, nil
	}

	filtered := NewFragmentFilterWithConfig(p.config.Filter).Filter(doc)
	merged := NewFragmentMergerWithConfig(p.config.Merge).Merge(filtered)
	groups := NewGrouperWithConfig(p.config.Group).Group(merged)
	if len(groups) == 0 {
		return result, nil
	}

	scored := NewScorerWithConfig(p.config.Score, p.config.Group.IndentBuckets).Score(groups)

	// The validator memoizes dictionary lookups for the duration of this
	// document only.
	var d dict.Dictionary
	if p.dict != nil {
		d = dict.NewMemo(p.dict)
	}
	validator := NewValidator(p.config.Validate, d)

	title, hasTitle := NewTitleSelectorWithConfig(p.config.Title).Select(scored, validator)

	remaining := scored
	if hasTitle {
		remaining = withoutGroup(scored, title.Group)
	}

	assigner := NewHierarchyAssignerWithConfig(p.config.Hierarchy)
	candidates := assigner.Assign(remaining, validator)
	candidates = p.suppressDuplicates(candidates)
	if hasTitle {
		candidates = withoutTitleText(candidates, title)

		// A heading appearing before the title on the page means the
		// chosen text is a leading section heading, not the document
		// title: demote it into the outline instead.
		if precedesTitle(candidates, title) {
			candidates = insertDemoted(candidates, title)
			hasTitle = false
		}
	}
	candidates = CorrectHierarchy(candidates)

	if hasTitle {
		result.Title = title.Text
		result.HasTitle = true
	}
	for _, c := range candidates {
		result.Outline = append(result.Outline, OutlineEntry{
			Level: c.Level,
			Text:  c.Text,
			Page:  c.Page,
		})
	}
	return result, nil
}

// suppressDuplicates drops every occurrence of heading text that repeats
// more than the configured limit. Such text is boilerplate that escaped the
// positional filter, for example a chapter name restated on every page at
// varying positions.
func (p *Pipeline) suppressDuplicates(candidates []HeadingCandidate) []HeadingCandidate {
	counts := make(map[string]int)
	for _, c := range candidates {
		counts[NormalizeText(c.Text)]++
	}
	out := candidates[:0]
	for _, c := range candidates {
		if counts[NormalizeText(c.Text)] > p.config.DuplicateLimit {
			continue
		}
		out = append(out, c)
	}
	return out
}

// withoutGroup returns scored minus the group g, preserving order
func withoutGroup(scored []*ScoredGroup, g *ScoredGroup) []*ScoredGroup {
	out := make([]*ScoredGroup, 0, len(scored))
	for _, s := range scored {
		if s != g {
			out = append(out, s)
		}
	}
	return out
}

// withoutTitleText drops candidates on the title's page whose text equals
// the title: a heading and the title are mutually exclusive readings of the
// same text.
func withoutTitleText(candidates []HeadingCandidate, title TitleSelection) []HeadingCandidate {
	want := NormalizeText(title.Text)
	out := candidates[:0]
	for _, c := range candidates {
		if c.Page == title.Page && NormalizeText(c.Text) == want {
			continue
		}
		out = append(out, c)
	}
	return out
}

// precedesTitle reports whether any candidate comes before the title in
// document order
func precedesTitle(candidates []HeadingCandidate, title TitleSelection) bool {
	for _, c := range candidates {
		if c.Page < title.Page || (c.Page == title.Page && c.Index < title.Index) {
			return true
		}
	}
	return false
}

// insertDemoted places the rejected title into the outline as an H1 at its
// document position. The subsequent correction pass reconciles its level
// with the surrounding headings.
func insertDemoted(candidates []HeadingCandidate, title TitleSelection) []HeadingCandidate {
	out := append(candidates, HeadingCandidate{
		Text:  title.Text,
		Page:  title.Page,
		Level: 1,
		Index: title.Index,
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].Index < out[j].Index
	})
	return out
}
