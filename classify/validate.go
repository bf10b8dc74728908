package classify

import (
	"strings"
	"unicode"

	"github.com/tsawler/outliner/dict"
)

// ValidateConfig holds configuration for heading-shape validation
type ValidateConfig struct {
	// MinLength is the minimum trimmed length in runes
	// Default: 3
	MinLength int

	// MaxWords is the maximum word count; longer text is paragraph-like
	// Default: 12
	MaxWords int

	// MinDictRatio is the minimum fraction of alphabetic tokens that must
	// be valid dictionary words. The check is skipped when no dictionary is
	// wired in or the dictionary has become unavailable.
	// Default: 0.5
	MinDictRatio float64

	// RequireCapitalized rejects text whose first word starts lowercase
	// (unless the text starts with a digit, as numbered headings do)
	// Default: true
	RequireCapitalized bool
}

// DefaultValidateConfig returns sensible default configuration
func DefaultValidateConfig() ValidateConfig {
	return ValidateConfig{
		MinLength:          3,
		MaxWords:           12,
		MinDictRatio:       0.5,
		RequireCapitalized: true,
	}
}

// Sequences of repeated special characters that never occur in real headings
// but are common in decorative rules and garbled extractions.
var decorativeRuns = []string{"--", "..", "==", "**", "^^", "<<", ">>", "//", `\\`, "~~"}

// Validator applies heading-shape validation: the text-quality gate deciding
// whether a fragment may become a heading or title. A Validator is created
// per document run; it owns the degraded-dictionary state for that run.
type Validator struct {
	config ValidateConfig
	dict   dict.Dictionary
	// degraded is set after the dictionary reports itself unavailable;
	// the ratio check then passes unconditionally for the rest of the run.
	degraded bool
}

// NewValidator creates a validator. d may be nil, in which case the
// dictionary-ratio check is skipped entirely.
func NewValidator(config ValidateConfig, d dict.Dictionary) *Validator {
	return &Validator{config: config, dict: d}
}

// Degraded reports whether the dictionary became unavailable during the run
func (v *Validator) Degraded() bool {
	return v.degraded
}

// ValidHeading reports whether text passes heading-shape validation:
// reasonable length and word count, no decorative character runs, no
// sentence-terminal punctuation, and a sufficient dictionary-word ratio.
func (v *Validator) ValidHeading(text string) bool {
	text = strings.TrimSpace(text)
	runes := []rune(text)

	if len(runes) < v.config.MinLength {
		return false
	}
	for _, run := range decorativeRuns {
		if strings.Contains(text, run) {
			return false
		}
	}
	if !containsLetter(text) {
		return false
	}
	if isSentenceTerminated(text) {
		return false
	}
	if len(strings.Fields(text)) > v.config.MaxWords {
		return false
	}

	// Numbered headings ("1. Preamble", "3.2 Scope") are always
	// heading-shaped once past the checks above.
	if unicode.IsDigit(runes[0]) {
		return true
	}

	if v.config.RequireCapitalized && startsLowercase(text) {
		return false
	}

	cleaned := strings.TrimFunc(text, isPunctOrSymbol)

	// Acronyms ("RFP", "OWASP") are valid headings but rarely dictionary
	// words, so they bypass the ratio check.
	if isAcronym(cleaned) {
		return true
	}

	return v.dictRatioOK(cleaned)
}

// dictRatioOK checks the dictionary-valid ratio of the text's alphabetic
// tokens. Without a dictionary, or after degradation, it always passes: the
// ratio is a quality filter, not structural.
func (v *Validator) dictRatioOK(text string) bool {
	if v.dict == nil || v.degraded {
		return true
	}

	var total, valid int
	for _, field := range strings.Fields(text) {
		token := strings.TrimFunc(field, isPunctOrSymbol)
		if len([]rune(token)) < 2 || !isAlphabetic(token) {
			continue
		}
		total++
		ok, err := v.dict.Contains(token)
		if err != nil {
			v.degraded = true
			return true
		}
		if ok {
			valid++
		}
	}
	if total == 0 {
		// No checkable tokens; fall back to requiring the text to be at
		// least half letters.
		return letterRatio(text) >= 0.5
	}
	return float64(valid)/float64(total) >= v.config.MinDictRatio
}

// isSentenceTerminated reports whether text ends in sentence-terminal
// punctuation, the mark of body prose rather than a heading.
func isSentenceTerminated(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	switch runes[len(runes)-1] {
	case '.', '!', '?', ';':
		return true
	}
	return false
}

// startsLowercase reports whether the first word's first letter is lowercase
func startsLowercase(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	first := strings.TrimFunc(fields[0], isPunctOrSymbol)
	for _, r := range first {
		return unicode.IsLower(r)
	}
	return false
}

// isAcronym reports whether text is an all-uppercase token of length >= 2
func isAcronym(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return unicode.IsUpper(runes[0])
}

// isAlphabetic reports whether every rune of s is a letter
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// containsLetter reports whether s has at least one letter
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// letterRatio returns the fraction of runes that are letters
func letterRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	letters := 0
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return float64(letters) / float64(len(runes))
}

// isPunctOrSymbol reports whether r is punctuation or a symbol
func isPunctOrSymbol(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
