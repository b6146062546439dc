// Package credibility scores news articles: source reputation, lexical
// bias/clickbait signals, and a weighted verdict over both plus
// third-party claim reviews. Everything here is pure and safe for
// concurrent use.
package credibility

import (
	"net/url"
	"strings"

	"nayak-niti/internal/domain"
)

// unknownSourceScore is the credibility assigned to domains missing from the registry.
const unknownSourceScore = 40

// registry is the ordered list of known sources. Substring matches walk it
// in order, so order decides ties.
var registry = []domain.SourceProfile{
	// Established news
	{
		Domain:           "thehindu.com",
		CredibilityScore: 92,
		BiasRating:       domain.BiasCenterLeft,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"Pulitzer Prize winning", "Fact-checking department", "145+ years history", "Transparent corrections policy"},
	},
	{
		Domain:           "indianexpress.com",
		CredibilityScore: 90,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"Strong investigative team", "Multiple source verification", "Editorial independence"},
	},
	{
		Domain:           "reuters.com",
		CredibilityScore: 95,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"International wire service", "Strict editorial standards", "Fact-based reporting"},
	},
	{
		Domain:           "bbc.com",
		CredibilityScore: 93,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"Public broadcaster", "Global presence", "Editorial guidelines"},
	},

	// Medium credibility
	{
		Domain:           "timesofindia.indiatimes.com",
		CredibilityScore: 72,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualHigh,
		CredibilityLevel: domain.CredibilityMedium,
		Warnings:         []string{"Sensational headlines occasionally", "Opinion mixed with news"},
		Strengths:        []string{"Wide reach", "Quick updates"},
	},
	{
		Domain:           "hindustantimes.com",
		CredibilityScore: 78,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualHigh,
		CredibilityLevel: domain.CredibilityMedium,
		Warnings:         []string{"Some clickbait headlines"},
		Strengths:        []string{"Regional coverage", "Established brand"},
	},
	{
		Domain:           "ndtv.com",
		CredibilityScore: 85,
		BiasRating:       domain.BiasCenterLeft,
		FactualReporting: domain.FactualHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"Live reporting", "Video journalism", "Fact-checking unit"},
	},

	// Fact-checking organizations
	{
		Domain:           "altnews.in",
		CredibilityScore: 95,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"IFCN certified", "Dedicated fact-checking", "Source verification", "Debunking expertise"},
	},
	{
		Domain:           "boomlive.in",
		CredibilityScore: 94,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"IFCN signatory", "Multimedia verification", "Transparent methodology"},
	},
	{
		Domain:           "factcheck.org",
		CredibilityScore: 96,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"Non-partisan", "University-backed", "Detailed analysis"},
	},
	{
		Domain:           "snopes.com",
		CredibilityScore: 93,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Strengths:        []string{"Oldest fact-checking site", "Comprehensive database", "Detailed explanations"},
	},

	// Government / official
	{
		Domain:           "pib.gov.in",
		CredibilityScore: 90,
		BiasRating:       domain.BiasCenter,
		FactualReporting: domain.FactualVeryHigh,
		CredibilityLevel: domain.CredibilityHigh,
		Warnings:         []string{"Official government source - may lack critical perspective"},
		Strengths:        []string{"Primary source", "Official announcements", "Press releases"},
	},

	// Questionable
	{
		Domain:           "opindia.com",
		CredibilityScore: 35,
		BiasRating:       domain.BiasRight,
		FactualReporting: domain.FactualLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Strong political bias", "Failed fact-checks", "Misleading headlines", "Opinion as news"},
	},
	{
		Domain:           "postcard.news",
		CredibilityScore: 25,
		BiasRating:       domain.BiasRight,
		FactualReporting: domain.FactualVeryLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Known for misinformation", "Extreme bias", "Conspiracy theories", "No editorial standards"},
	},
	{
		Domain:           "tfipost.com",
		CredibilityScore: 30,
		BiasRating:       domain.BiasRight,
		FactualReporting: domain.FactualLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Questionable sourcing", "Strong bias", "Sensationalism"},
	},
	{
		Domain:           "swarajyamag.com",
		CredibilityScore: 55,
		BiasRating:       domain.BiasRight,
		FactualReporting: domain.FactualMixed,
		CredibilityLevel: domain.CredibilityMedium,
		Warnings:         []string{"Strong right-wing bias", "Opinion-heavy"},
		Strengths:        []string{"Some original reporting"},
	},

	// Social media / unverified
	{
		Domain:           "facebook.com",
		CredibilityScore: 20,
		BiasRating:       domain.BiasUnknown,
		FactualReporting: domain.FactualVeryLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Social media platform", "Unverified user content", "High misinformation risk", "Not a news source"},
	},
	{
		Domain:           "twitter.com",
		CredibilityScore: 25,
		BiasRating:       domain.BiasUnknown,
		FactualReporting: domain.FactualVeryLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Social media platform", "Unverified posts", "Viral misinformation", "Not a news source"},
		Strengths:        []string{"Real-time updates", "Primary sources sometimes available"},
	},
	{
		Domain:           "whatsapp.com",
		CredibilityScore: 10,
		BiasRating:       domain.BiasUnknown,
		FactualReporting: domain.FactualVeryLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Messaging app", "Major source of fake news in India", "No verification", "Viral forwards"},
	},
}

// socialAliases maps hostname fragments to the registry entry that covers them.
// Checked in order after the registry walk.
var socialAliases = []struct {
	fragments []string
	domain    string
}{
	{[]string{"facebook", "fb.com"}, "facebook.com"},
	{[]string{"twitter", "x.com"}, "twitter.com"},
	{[]string{"whatsapp", "wa.me"}, "whatsapp.com"},
}

var unknownSourceWarnings = []string{
	"Unverified news source",
	"No established track record",
	"Cannot verify editorial standards",
	"Cross-check with known reliable sources",
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, p := range registry {
		idx[p.Domain] = i
	}
	return idx
}()

// Lookup resolves a URL to a credibility profile. It never fails: malformed
// URLs get an "Invalid URL" profile and unknown domains a cautious default.
// Callers receive their own copy and may modify it freely.
func Lookup(rawURL string) domain.SourceProfile {
	host, ok := NormalizeDomain(rawURL)
	if !ok {
		return invalidProfile()
	}

	if i, found := registryIndex[host]; found {
		return clone(registry[i])
	}

	for _, p := range registry {
		if strings.Contains(host, p.Domain) || strings.Contains(p.Domain, host) {
			return clone(p)
		}
	}

	for _, alias := range socialAliases {
		for _, fragment := range alias.fragments {
			if strings.Contains(host, fragment) {
				return clone(registry[registryIndex[alias.domain]])
			}
		}
	}

	return domain.SourceProfile{
		Domain:           host,
		CredibilityScore: unknownSourceScore,
		BiasRating:       domain.BiasUnknown,
		FactualReporting: domain.FactualMixed,
		CredibilityLevel: domain.CredibilityUnknown,
		Warnings:         append([]string(nil), unknownSourceWarnings...),
		Strengths:        []string{},
	}
}

// NormalizeDomain extracts the lower-cased hostname of rawURL without a
// leading "www.". Inputs without a scheme are read as https URLs.
func NormalizeDomain(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", false
	}
	return host, true
}

// KnownSources returns a copy of the registry in lookup order.
func KnownSources() []domain.SourceProfile {
	out := make([]domain.SourceProfile, len(registry))
	for i, p := range registry {
		out[i] = clone(p)
	}
	return out
}

func invalidProfile() domain.SourceProfile {
	return domain.SourceProfile{
		Domain:           "Invalid URL",
		CredibilityScore: 0,
		BiasRating:       domain.BiasUnknown,
		FactualReporting: domain.FactualVeryLow,
		CredibilityLevel: domain.CredibilityLow,
		Warnings:         []string{"Invalid URL provided"},
		Strengths:        []string{},
	}
}

func clone(p domain.SourceProfile) domain.SourceProfile {
	p.Warnings = append([]string{}, p.Warnings...)
	p.Strengths = append([]string{}, p.Strengths...)
	return p
}
