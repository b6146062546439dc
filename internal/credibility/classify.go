package credibility

import (
	"strings"

	"nayak-niti/internal/domain"
)

// MaxClaims is how many claim reviews an assessment consumes.
const MaxClaims = 5

// IsFalseRating reports whether a reviewer's free-text rating marks the
// claim false or misleading.
func IsFalseRating(rating string) bool {
	return containsAny(strings.ToLower(rating), falseRatingMarkers)
}

// IsTrueRating reports whether a rating marks the claim accurate. A rating
// can be both: "Incorrect" contains "correct".
func IsTrueRating(rating string) bool {
	return containsAny(strings.ToLower(rating), trueRatingMarkers)
}

// CapClaims returns at most MaxClaims results, keeping upstream order.
func CapClaims(claims []domain.FactCheckResult) []domain.FactCheckResult {
	if len(claims) > MaxClaims {
		return claims[:MaxClaims]
	}
	return claims
}

func countRatings(claims []domain.FactCheckResult, match func(string) bool) int {
	n := 0
	for _, c := range claims {
		if match(c.Rating) {
			n++
		}
	}
	return n
}
