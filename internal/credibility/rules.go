package credibility

import (
	"fmt"
	"math"

	"nayak-niti/internal/domain"
)

// Input is everything the aggregator weighs for one article. Profile is nil
// when no source URL was supplied.
type Input struct {
	Profile *domain.SourceProfile
	Bias    domain.BiasAnalysis
	Claims  []domain.FactCheckResult
}

// Adjustment is what a rule contributes to the running score.
type Adjustment struct {
	Delta    float64
	Concerns []string
}

// Rule is one named step of the assessment. Apply sees the score produced by
// every earlier rule.
type Rule struct {
	Name  string
	Apply func(in Input, score float64) Adjustment
}

const (
	initialScore      = 50.0
	sourceWeight      = 0.4
	noSourcePenalty   = 20.0
	lowSourcePenalty  = 15.0
	unverifiedPenalty = 10.0
	unreliableBelow   = 50
	redFlagPenalty    = 5.0
	falseClaimPenalty = 15.0
	trueClaimBonus    = 5.0
)

// Rules is the assessment weight table, applied in order.
var Rules = []Rule{
	{Name: "source-baseline", Apply: sourceBaseline},
	{Name: "source-reputation", Apply: sourceReputation},
	{Name: "clickbait", Apply: clickbaitPenalty},
	{Name: "sensationalism", Apply: sensationalismPenalty},
	{Name: "political-bias", Apply: biasPenalty},
	{Name: "emotional-language", Apply: emotionalPenalty},
	{Name: "opinion-balance", Apply: opinionPenalty},
	{Name: "red-flags", Apply: redFlagPenalties},
	{Name: "claim-reviews", Apply: claimReviews},
}

func sourceBaseline(in Input, score float64) Adjustment {
	if in.Profile == nil {
		return Adjustment{
			Delta:    -noSourcePenalty,
			Concerns: []string{"No source URL provided - cannot verify origin"},
		}
	}
	// The profile replaces the starting score instead of adjusting it.
	return Adjustment{Delta: float64(in.Profile.CredibilityScore)*sourceWeight - score}
}

func sourceReputation(in Input, _ float64) Adjustment {
	p := in.Profile
	if p == nil {
		return Adjustment{}
	}

	var adj Adjustment
	switch p.CredibilityLevel {
	case domain.CredibilityLow:
		adj.Concerns = append(adj.Concerns, fmt.Sprintf("Source %q has LOW credibility rating", p.Domain))
		adj.Delta -= lowSourcePenalty
	case domain.CredibilityUnknown:
		adj.Concerns = append(adj.Concerns, fmt.Sprintf("Source %q is UNVERIFIED", p.Domain))
		adj.Delta -= unverifiedPenalty
	}
	if p.CredibilityScore < unreliableBelow {
		adj.Concerns = append(adj.Concerns, fmt.Sprintf("DANGER: Known unreliable source (Score: %d/100)", p.CredibilityScore))
	}
	adj.Concerns = append(adj.Concerns, p.Warnings...)
	return adj
}

func clickbaitPenalty(in Input, _ float64) Adjustment {
	cb := in.Bias.ClickbaitScore
	if cb <= 20 {
		return Adjustment{}
	}
	return Adjustment{
		Delta:    -math.Min(20, float64(cb)/5),
		Concerns: []string{fmt.Sprintf("CLICKBAIT detected (Score: %d/100)", cb)},
	}
}

func sensationalismPenalty(in Input, _ float64) Adjustment {
	ss := in.Bias.SensationalismScore
	if ss <= 30 {
		return Adjustment{}
	}
	return Adjustment{
		Delta:    -math.Min(15, float64(ss)/7),
		Concerns: []string{fmt.Sprintf("HIGH sensationalism detected (Score: %d/100)", ss)},
	}
}

func biasPenalty(in Input, _ float64) Adjustment {
	magnitude := in.Bias.BiasScore
	if magnitude < 0 {
		magnitude = -magnitude
	}
	switch {
	case magnitude > 50:
		return Adjustment{Delta: -15, Concerns: []string{fmt.Sprintf("EXTREME %s detected", in.Bias.OverallBias)}}
	case magnitude > 30:
		return Adjustment{Delta: -10, Concerns: []string{fmt.Sprintf("Strong %s detected", in.Bias.OverallBias)}}
	}
	return Adjustment{}
}

func emotionalPenalty(in Input, _ float64) Adjustment {
	n := len(in.Bias.EmotionalLanguage)
	if n <= 5 {
		return Adjustment{}
	}
	return Adjustment{
		Delta:    -10,
		Concerns: []string{fmt.Sprintf("Excessive emotional/loaded language (%d instances)", n)},
	}
}

func opinionPenalty(in Input, _ float64) Adjustment {
	op, fact := in.Bias.OpinionStatements, in.Bias.FactualStatements
	switch {
	case op > fact*3:
		return Adjustment{
			Delta:    -15,
			Concerns: []string{fmt.Sprintf("Content is HEAVILY opinion-based (%d opinion vs %d factual)", op, fact)},
		}
	case op > fact:
		return Adjustment{Delta: -8, Concerns: []string{"More opinion than facts detected"}}
	}
	return Adjustment{}
}

func redFlagPenalties(in Input, _ float64) Adjustment {
	return Adjustment{
		Delta:    -redFlagPenalty * float64(len(in.Bias.RedFlags)),
		Concerns: append([]string(nil), in.Bias.RedFlags...),
	}
}

func claimReviews(in Input, _ float64) Adjustment {
	var adj Adjustment
	if n := countRatings(in.Claims, IsFalseRating); n > 0 {
		adj.Delta -= falseClaimPenalty * float64(n)
		adj.Concerns = append(adj.Concerns, fmt.Sprintf("%d related claim(s) marked as FALSE/MISLEADING by fact-checkers", n))
	}
	if n := countRatings(in.Claims, IsTrueRating); n > 0 {
		adj.Delta += trueClaimBonus * float64(n)
	}
	return adj
}
