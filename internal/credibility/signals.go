package credibility

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	capsTokenPattern   = regexp.MustCompile(`\b[A-Z]{4,}\b`)
	punctuationPattern = regexp.MustCompile(`[!?]{2,}`)
)

// Signals holds the raw lexical matches for one text. Matched lists keep
// vocabulary order and hold each entry at most once.
type Signals struct {
	Clickbait    []string
	Sensational  []string
	Vague        []string
	Extreme      []string
	Manipulative []string
	LeftBias     []string
	RightBias    []string

	// Occurrence totals, counted without overlap.
	PositiveHits int
	NegativeHits int
	FactualHits  int
	OpinionHits  int

	CapsTokens      int
	PunctuationRuns int
	HasCitation     bool
	Length          int
}

// Extract scans text against every vocabulary. It is case-insensitive and
// matches substrings, so "all" is found inside "ballot".
func Extract(text string) Signals {
	lower := strings.ToLower(text)

	return Signals{
		Clickbait:       matchAll(lower, clickbaitPhrases),
		Sensational:     matchAll(lower, sensationalWords),
		Vague:           matchAll(lower, vagueSourcingTerms),
		Extreme:         matchAll(lower, extremeTerms),
		Manipulative:    matchAll(lower, manipulativePhrases),
		LeftBias:        matchAll(lower, leftBiasWords),
		RightBias:       matchAll(lower, rightBiasWords),
		PositiveHits:    countAll(lower, positiveWords),
		NegativeHits:    countAll(lower, negativeWords),
		FactualHits:     countAll(lower, factualIndicators),
		OpinionHits:     countAll(lower, opinionIndicators),
		CapsTokens:      len(capsTokenPattern.FindAllString(text, -1)),
		PunctuationRuns: len(punctuationPattern.FindAllString(text, -1)),
		HasCitation:     containsAny(lower, citationMarkers),
		Length:          utf8.RuneCountInString(text),
	}
}

func matchAll(lower string, vocabulary []string) []string {
	var found []string
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

func countAll(lower string, vocabulary []string) int {
	total := 0
	for _, term := range vocabulary {
		total += strings.Count(lower, term)
	}
	return total
}

func containsAny(lower string, vocabulary []string) bool {
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
