package classify

import (
	"testing"

	"github.com/tsawler/outliner/dict"
)

// allowAll accepts every word
var allowAll = dict.Func(func(word string) (bool, error) { return true, nil })

// denyAll rejects every word
var denyAll = dict.Func(func(word string) (bool, error) { return false, nil })

func TestValidHeading(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"simple heading", "Introduction", true},
		{"multi word", "Revision History", true},
		{"numbered", "1. Scope of Work", true},
		{"dotted number", "3.2 Methodology", true},
		{"acronym", "RFP", true},
		{"too short", "ab", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"decorative dashes", "-----------------", false},
		{"decorative dots", "..................", false},
		{"trailing dots after text", "Contents........", false},
		{"no letters", "123 456", false},
		{"sentence with period", "This document describes the system.", false},
		{"question", "What should we do?", false},
		{"too many words", "this heading has far too many words to plausibly be a real heading in any document", false},
		{"lowercase start", "introduction to the system", false},
		{"capitalized start", "Introduction to the system", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(DefaultValidateConfig(), allowAll)
			if got := v.ValidHeading(tt.text); got != tt.valid {
				t.Errorf("ValidHeading(%q) = %v, want %v", tt.text, got, tt.valid)
			}
		})
	}
}

func TestValidHeadingDictionaryRatio(t *testing.T) {
	// Only half the tokens are dictionary words: exactly at the threshold.
	half := dict.Func(func(word string) (bool, error) {
		folded := dict.Fold(word)
		return folded == "introduction" || folded == "the", nil
	})

	v := NewValidator(DefaultValidateConfig(), half)
	if !v.ValidHeading("Introduction The Xqzvw Mjkpl") {
		t.Error("text at the ratio threshold rejected")
	}

	v = NewValidator(DefaultValidateConfig(), denyAll)
	if v.ValidHeading("Gibberish Xqzvw Mjkpl") {
		t.Error("gibberish passed with a rejecting dictionary")
	}
}

func TestValidHeadingNilDictionary(t *testing.T) {
	v := NewValidator(DefaultValidateConfig(), nil)
	if !v.ValidHeading("Xqzvw Mjkpl Qwfpb") {
		t.Error("dictionary check applied with no dictionary wired in")
	}
}

func TestValidHeadingDegradesOnDictionaryError(t *testing.T) {
	calls := 0
	failing := dict.Func(func(word string) (bool, error) {
		calls++
		return false, dict.ErrUnavailable
	})

	v := NewValidator(DefaultValidateConfig(), failing)
	// The failing lookup must not reject the heading.
	if !v.ValidHeading("Perfectly Reasonable Heading") {
		t.Error("heading rejected when dictionary failed")
	}
	if !v.Degraded() {
		t.Error("Degraded() = false after dictionary error")
	}
	// Subsequent validations skip the dictionary entirely.
	before := calls
	if !v.ValidHeading("Another Heading Here") {
		t.Error("heading rejected after degradation")
	}
	if calls != before {
		t.Errorf("dictionary consulted %d more times after degradation", calls-before)
	}
}

func TestValidHeadingEnglishDictionary(t *testing.T) {
	v := NewValidator(DefaultValidateConfig(), dict.NewEnglish())
	if !v.ValidHeading("Introduction and Background") {
		t.Error("common document heading rejected by embedded dictionary")
	}
}
