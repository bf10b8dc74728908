package classify

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// TitleConfig holds configuration for document title selection
type TitleConfig struct {
	// MaxLength is the longest reconstructed title accepted, in runes
	// Default: 200
	MaxLength int

	// MinLetterRatio is the minimum fraction of letters in the title text
	// Default: 0.4
	MinLetterRatio float64
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxLength:      200,
		MinLetterRatio: 0.4,
	}
}

// Text patterns that disqualify a candidate title: version stamps, bare
// dates, code-like identifiers and figure references are prominent on cover
// pages but are never the document's title.
var titleExclusions = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^v(ersion)?\s*\d+(\.\d+)*$`),
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`),
	regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}$`),
	regexp.MustCompile(`^[A-Z]{1,4}[-_]?\d{2,}$`),
	regexp.MustCompile(`(?i)^(figure|table|fig\.?)\s+\d+`),
	regexp.MustCompile(`https?://`),
}

// TitleSelection describes the chosen title and where it came from, so the
// pipeline can exclude the same text from the outline or reinstate it as a
// heading if it turns out not to be the document title.
type TitleSelection struct {
	// Text is the reconstructed title
	Text string

	// Page and Index locate the title's first fragment in the document
	Page  int
	Index int

	// Group is the formatting group the title was drawn from
	Group *ScoredGroup
}

// TitleSelector picks a document title from scored formatting groups
type TitleSelector struct {
	config TitleConfig
}

// NewTitleSelector creates a selector with default configuration
func NewTitleSelector() *TitleSelector {
	return NewTitleSelectorWithConfig(DefaultTitleConfig())
}

// NewTitleSelectorWithConfig creates a selector with custom configuration
func NewTitleSelectorWithConfig(config TitleConfig) *TitleSelector {
	if config.MaxLength <= 0 {
		config.MaxLength = DefaultTitleConfig().MaxLength
	}
	return &TitleSelector{config: config}
}

// Select scans groups in descending score order and returns the first whose
// fragments on the document's first page reconstruct into valid title text.
// Titles live on cover pages, so groups without first-page fragments are not
// candidates. The reconstructed text must read like a heading too, which the
// validator decides; validator may be nil to skip that check. The second
// return is false when no group yields an acceptable title.
func (s *TitleSelector) Select(groups []*ScoredGroup, validator *Validator) (TitleSelection, bool) {
	firstPage := documentFirstPage(groups)
	if firstPage == 0 {
		return TitleSelection{}, false
	}

	for _, g := range SortByScore(groups) {
		frags := fragmentsOnPage(g, firstPage)
		if len(frags) == 0 {
			continue
		}
		text := reconstructTitle(frags)
		if !s.ValidTitle(text) {
			continue
		}
		if validator != nil && !validator.ValidHeading(text) {
			continue
		}
		return TitleSelection{
			Text:  text,
			Page:  frags[0].Page,
			Index: frags[0].Index,
			Group: g,
		}, true
	}
	return TitleSelection{}, false
}

// documentFirstPage returns the lowest page number carrying any fragment, or
// 0 when there are none
func documentFirstPage(groups []*ScoredGroup) int {
	first := 0
	for _, g := range groups {
		for _, f := range g.Fragments {
			if first == 0 || f.Page < first {
				first = f.Page
			}
		}
	}
	return first
}

// ValidTitle reports whether text is acceptable as a document title: short
// enough, letter-dominated, not digit-heavy, and not matching any of the
// cover-page exclusion patterns.
func (s *TitleSelector) ValidTitle(text string) bool {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) < 3 || len(runes) > s.config.MaxLength {
		return false
	}
	if strings.Contains(text, "--") {
		return false
	}
	if letterRatio(text) < s.config.MinLetterRatio {
		return false
	}
	if digitRatio(text) > 0.5 {
		return false
	}
	for _, re := range titleExclusions {
		if re.MatchString(text) {
			return false
		}
	}
	return true
}

// fragmentsOnPage returns the group's fragments on the given page in
// extraction order
func fragmentsOnPage(g *ScoredGroup, page int) []fragRef {
	var out []fragRef
	for _, f := range g.Fragments {
		if f.Page == page {
			out = append(out, fragRef{Text: f.Text, Page: f.Page, Index: f.Index})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

type fragRef struct {
	Text  string
	Page  int
	Index int
}

// reconstructTitle joins fragment texts into one title, dropping exact
// repeats and merging overlapping pieces. Extractors commonly emit a cover
// title twice, or split it so one fragment's suffix repeats as the next
// fragment's prefix; both artifacts are healed here.
func reconstructTitle(frags []fragRef) string {
	var parts []string
	seen := make(map[string]bool)
	for _, f := range frags {
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}
		key := strings.ToLower(text)
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, text)
	}

	if len(parts) == 0 {
		return ""
	}
	title := parts[0]
	for _, p := range parts[1:] {
		title = mergeOverlap(title, p)
	}
	return strings.Join(strings.Fields(title), " ")
}

// mergeOverlap appends b to a, collapsing the longest suffix of a that is
// also a prefix of b
func mergeOverlap(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for n := max; n > 0; n-- {
		if strings.EqualFold(a[len(a)-n:], b[:n]) {
			return a + b[n:]
		}
	}
	return a + " " + b
}

// digitRatio returns the fraction of runes that are digits
func digitRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	digits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(len(runes))
}
