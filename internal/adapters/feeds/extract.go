package feeds

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxDescriptionRunes = 500
	minKeyPointRunes    = 25
	maxKeyPointRunes    = 200
	maxKeyPoints        = 4
	shortTextRunes      = 30
	excerptRunes        = 150
)

type keywordGroup struct {
	name     string
	keywords []string
}

var policyKeywords = []string{
	"scheme", "policy", "initiative", "programme", "mission",
	"bill", "act", "amendment", "cabinet", "government",
	"launch", "approve", "announce", "implement", "yojana",
	"subsidy", "fund", "budget", "allocation", "welfare",
}

// First match wins.
var categoryKeywords = []keywordGroup{
	{"Education", []string{"education", "school", "university", "student", "teacher", "learning"}},
	{"Healthcare", []string{"health", "medical", "hospital", "doctor", "ayushman", "treatment"}},
	{"Agriculture", []string{"agriculture", "farmer", "crop", "kisan", "farming", "rural"}},
	{"Technology", []string{"technology", "digital", "internet", "cyber", "ai", "tech"}},
	{"Environment", []string{"environment", "climate", "pollution", "green", "renewable", "solar"}},
	{"Business", []string{"business", "startup", "industry", "commerce", "msme", "trade"}},
	{"Economy", []string{"economy", "finance", "tax", "budget", "economic", "fiscal"}},
	{"Social Welfare", []string{"welfare", "women", "child", "pension", "disability", "senior"}},
	{"Infrastructure", []string{"infrastructure", "road", "highway", "railway", "metro", "construction"}},
	{"Employment", []string{"employment", "job", "skill", "training", "rozgar", "career"}},
}

// Every matching sector is reported.
var sectorKeywords = []keywordGroup{
	{"Education", []string{"education", "school", "university"}},
	{"Healthcare", []string{"health", "medical", "hospital"}},
	{"Agriculture", []string{"agriculture", "farmer", "crop"}},
	{"Technology", []string{"technology", "digital", "internet"}},
	{"Environment", []string{"environment", "climate", "green"}},
	{"Economy", []string{"economy", "finance", "tax"}},
	{"Employment", []string{"employment", "job", "skill"}},
	{"Infrastructure", []string{"infrastructure", "road", "transport"}},
}

var (
	highImpactKeywords   = []string{"crore", "billion", "national", "major", "landmark", "revolutionary"}
	mediumImpactKeywords = []string{"lakh", "million", "regional", "significant"}

	placeholderKeyPoints = []string{
		"Official details available on government portal",
		"Implementation timeline to be announced",
		"Public consultation in progress",
	}

	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	clauseSplit   = regexp.MustCompile(`[;,]`)
)

// CleanText strips markup, decodes entities and collapses whitespace.
func CleanText(s string) string {
	if strings.ContainsAny(s, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

// CleanDescription is CleanText limited to a displayable length.
func CleanDescription(s string) string {
	return truncateRunes(CleanText(s), maxDescriptionRunes)
}

// IsPolicyRelated reports whether a headline mentions any policy keyword.
func IsPolicyRelated(text string) bool {
	return containsAny(strings.ToLower(text), policyKeywords)
}

// Categorize returns the first category whose keywords appear in text, or "General".
func Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, g := range categoryKeywords {
		if containsAny(lower, g.keywords) {
			return g.name
		}
	}
	return "General"
}

// Impact grades text as "High", "Medium" or "Low" by scale words.
func Impact(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, highImpactKeywords):
		return "High"
	case containsAny(lower, mediumImpactKeywords):
		return "Medium"
	default:
		return "Low"
	}
}

// Sectors lists every sector mentioned in text, or ["General"].
func Sectors(text string) []string {
	lower := strings.ToLower(text)
	var sectors []string
	for _, g := range sectorKeywords {
		if containsAny(lower, g.keywords) {
			sectors = append(sectors, g.name)
		}
	}
	if len(sectors) == 0 {
		return []string{"General"}
	}
	return sectors
}

// KeyPoints picks up to four summary points from text: whole sentences when
// there are enough, else clauses, else a generic excerpt.
func KeyPoints(text string) []string {
	if runeLen(text) < shortTextRunes {
		return append([]string(nil), placeholderKeyPoints...)
	}

	if sentences := pieces(sentenceSplit.Split(text, -1)); len(sentences) >= 3 {
		return firstN(sentences, maxKeyPoints)
	}
	if clauses := pieces(clauseSplit.Split(text, -1)); len(clauses) >= 2 {
		return firstN(clauses, maxKeyPoints)
	}

	return []string{
		truncateRunes(text, excerptRunes) + "...",
		"More details available on official website",
		"Implementation being monitored by respective ministry",
	}
}

func pieces(parts []string) []string {
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if n := runeLen(p); n > minKeyPointRunes && n < maxKeyPointRunes {
			out = append(out, p)
		}
	}
	return out
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
