package credibility

import (
	"math"

	"nayak-niti/internal/domain"
)

type verdictTier struct {
	minScore       int
	verdict        string
	recommendation string
}

// verdictTiers is sorted by descending minScore; the last tier catches everything.
var verdictTiers = []verdictTier{
	{85, "Highly Reliable", "Content appears trustworthy from a credible source with factual reporting"},
	{70, "Generally Reliable", "Content is likely accurate but cross-verify important claims"},
	{55, "Mixed Reliability", "Exercise caution - Verify all major claims with authoritative sources"},
	{40, "Low Reliability", "HIGH CAUTION advised - Source has credibility issues. Seek primary sources"},
	{25, "Very Low Reliability", "SERIOUS CONCERNS detected - Likely contains misinformation. Do not share"},
	{0, "Not Credible", "EXTREME RISK - Strong indicators of fake news/propaganda. Disregard this source"},
}

// Assess combines the source profile, the text analysis and claim reviews
// into a verdict. profile may be nil. Claims are used as given; cap them
// with CapClaims first.
func Assess(profile *domain.SourceProfile, bias domain.BiasAnalysis, claims []domain.FactCheckResult) domain.Assessment {
	in := Input{Profile: profile, Bias: bias, Claims: claims}

	score := initialScore
	concerns := []string{}
	for _, rule := range Rules {
		adj := rule.Apply(in, score)
		score += adj.Delta
		concerns = append(concerns, adj.Concerns...)
	}

	overall := int(math.Round(math.Max(0, math.Min(100, score))))
	tier := tierFor(overall)

	return domain.Assessment{
		OverallScore:   overall,
		Verdict:        tier.verdict,
		Recommendation: tier.recommendation,
		Concerns:       concerns,
	}
}

// tierFor returns the verdict tier for a rounded score.
func tierFor(score int) verdictTier {
	for _, t := range verdictTiers {
		if score >= t.minScore {
			return t
		}
	}
	return verdictTiers[len(verdictTiers)-1]
}

// Verdict returns the verdict and recommendation for a rounded score.
func Verdict(score int) (verdict, recommendation string) {
	t := tierFor(score)
	return t.verdict, t.recommendation
}
