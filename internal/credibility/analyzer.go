package credibility

import (
	"fmt"

	"nayak-niti/internal/domain"
)

const (
	clickbaitWeight       = 20
	sensationalWeight     = 10
	sensationalFlagAbove  = 30
	extremeFlagAbove      = 5
	capsFlagAbove         = 3
	punctuationFlagAbove  = 2
	biasWordWeight        = 15
	sentimentWordWeight   = 10
	sentimentBand         = 25
	opinionFlagMinimum    = 3
	citationRequiredAfter = 200
	emotionalDisplayLimit = 10
)

// Analyze reads bias, tone and clickbait signals from text. The result
// depends only on text.
func Analyze(text string) domain.BiasAnalysis {
	s := Extract(text)
	redFlags := []string{}

	clickbait := 0
	for _, phrase := range s.Clickbait {
		clickbait += clickbaitWeight
		redFlags = append(redFlags, fmt.Sprintf("Clickbait phrase detected: %q", phrase))
	}

	sensational := len(s.Sensational) * sensationalWeight
	if sensational > sensationalFlagAbove {
		redFlags = append(redFlags, "Excessive sensational language detected")
	}

	for _, term := range s.Vague {
		redFlags = append(redFlags, fmt.Sprintf("Vague sourcing: %q", term))
	}

	if len(s.Extreme) > extremeFlagAbove {
		redFlags = append(redFlags, "Excessive use of absolute/extreme language")
	}

	for _, phrase := range s.Manipulative {
		redFlags = append(redFlags, fmt.Sprintf("Manipulative language: %q", phrase))
	}

	if s.CapsTokens > capsFlagAbove {
		redFlags = append(redFlags, "Excessive capitalization (shouting)")
	}
	if s.PunctuationRuns > punctuationFlagAbove {
		redFlags = append(redFlags, "Excessive punctuation (!!!, ???)")
	}

	bias := clamp((len(s.RightBias)-len(s.LeftBias))*biasWordWeight, -100, 100)

	sentimentScore := (s.PositiveHits - s.NegativeHits) * sentimentWordWeight
	sentiment := domain.SentimentNeutral
	switch {
	case sentimentScore > sentimentBand:
		sentiment = domain.SentimentPositive
	case sentimentScore < -sentimentBand:
		sentiment = domain.SentimentNegative
	}

	if s.OpinionHits > s.FactualHits*2 && s.OpinionHits > opinionFlagMinimum {
		redFlags = append(redFlags, "Content is heavily opinion-based rather than factual")
	}

	if !s.HasCitation && s.Length > citationRequiredAfter {
		redFlags = append(redFlags, "No clear sources or citations provided")
	}

	loaded := append([]string{}, s.Sensational...)
	emotional := loaded
	if len(emotional) > emotionalDisplayLimit {
		emotional = emotional[:emotionalDisplayLimit]
	}

	return domain.BiasAnalysis{
		OverallBias:         BiasLabel(bias),
		BiasScore:           bias,
		Sentiment:           sentiment,
		SentimentScore:      sentimentScore,
		EmotionalLanguage:   append([]string{}, emotional...),
		FactualStatements:   max(1, s.FactualHits),
		OpinionStatements:   s.OpinionHits,
		LoadedWords:         loaded,
		ClickbaitScore:      clamp(clickbait, 0, 100),
		SensationalismScore: clamp(sensational, 0, 100),
		RedFlags:            redFlags,
	}
}

// BiasLabel names the band a bias score falls into. Thresholds are strict.
func BiasLabel(score int) string {
	switch {
	case score < -40:
		return "Strong Left bias"
	case score > 40:
		return "Strong Right bias"
	case score < -20:
		return "Left-leaning"
	case score > 20:
		return "Right-leaning"
	case score < -5:
		return "Center-Left"
	case score > 5:
		return "Center-Right"
	default:
		return "Center"
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
