package credibility_test

import (
	"reflect"
	"testing"

	"nayak-niti/internal/credibility"
	"nayak-niti/internal/domain"
)

func TestLookup_KnownDomain(t *testing.T) {
	// Act
	p := credibility.Lookup("https://altnews.in/article")

	// Assert
	if p.CredibilityScore != 95 {
		t.Errorf("CredibilityScore: got %v, want 95", p.CredibilityScore)
	}
	if p.CredibilityLevel != domain.CredibilityHigh {
		t.Errorf("CredibilityLevel: got %v, want High", p.CredibilityLevel)
	}
	if p.Domain != "altnews.in" {
		t.Errorf("Domain: got %v, want altnews.in", p.Domain)
	}
}

func TestLookup_StripsWWW(t *testing.T) {
	// Act
	withWWW := credibility.Lookup("https://www.thehindu.com/x")
	without := credibility.Lookup("https://thehindu.com/x")
	upper := credibility.Lookup("HTTPS://WWW.TheHindu.com/x")

	// Assert
	if !reflect.DeepEqual(withWWW, without) {
		t.Errorf("www lookup differs: got %+v, want %+v", withWWW, without)
	}
	if !reflect.DeepEqual(upper, without) {
		t.Errorf("mixed-case lookup differs: got %+v, want %+v", upper, without)
	}
	if without.Domain != "thehindu.com" {
		t.Errorf("Domain: got %v, want thehindu.com", without.Domain)
	}
}

func TestLookup_Resolution(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"subdomain substring", "https://edition.bbc.com/news/india", "bbc.com"},
		{"mobile facebook", "https://m.facebook.com/story", "facebook.com"},
		{"fb short link", "https://fb.com/page", "facebook.com"},
		{"x.com alias", "https://x.com/someone/status/1", "twitter.com"},
		{"wa.me alias", "https://wa.me/919999999999", "whatsapp.com"},
		{"bare host", "reuters.com/world", "reuters.com"},
		{"nested indiatimes", "https://timesofindia.indiatimes.com/city", "timesofindia.indiatimes.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := credibility.Lookup(tt.url)
			if got.Domain != tt.want {
				t.Errorf("Lookup(%q).Domain: got %v, want %v", tt.url, got.Domain, tt.want)
			}
		})
	}
}

func TestLookup_UnknownDomain(t *testing.T) {
	// Act
	p := credibility.Lookup("randomblog.example")

	// Assert
	if p.Domain != "randomblog.example" {
		t.Errorf("Domain: got %v, want randomblog.example", p.Domain)
	}
	if p.CredibilityScore != 40 {
		t.Errorf("CredibilityScore: got %v, want 40", p.CredibilityScore)
	}
	if p.CredibilityLevel != domain.CredibilityUnknown {
		t.Errorf("CredibilityLevel: got %v, want Unknown", p.CredibilityLevel)
	}
	if p.BiasRating != domain.BiasUnknown || p.FactualReporting != domain.FactualMixed {
		t.Errorf("ratings: got %v/%v, want Unknown/Mixed", p.BiasRating, p.FactualReporting)
	}
	want := []string{
		"Unverified news source",
		"No established track record",
		"Cannot verify editorial standards",
		"Cross-check with known reliable sources",
	}
	if !reflect.DeepEqual(p.Warnings, want) {
		t.Errorf("Warnings: got %v, want %v", p.Warnings, want)
	}
	if p.Strengths == nil || len(p.Strengths) != 0 {
		t.Errorf("Strengths: got %#v, want empty slice", p.Strengths)
	}
}

func TestLookup_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "https://", "http://[::1"} {
		p := credibility.Lookup(raw)
		if p.Domain != "Invalid URL" {
			t.Errorf("Lookup(%q).Domain: got %v, want Invalid URL", raw, p.Domain)
		}
		if p.CredibilityScore != 0 || p.CredibilityLevel != domain.CredibilityLow {
			t.Errorf("Lookup(%q): got score %v level %v, want 0/Low", raw, p.CredibilityScore, p.CredibilityLevel)
		}
		if p.FactualReporting != domain.FactualVeryLow {
			t.Errorf("Lookup(%q).FactualReporting: got %v, want Very Low", raw, p.FactualReporting)
		}
		if !reflect.DeepEqual(p.Warnings, []string{"Invalid URL provided"}) {
			t.Errorf("Lookup(%q).Warnings: got %v", raw, p.Warnings)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	// Arrange
	first := credibility.Lookup("https://postcard.news/a")

	// Act
	first.Warnings[0] = "mutated"
	first.CredibilityScore = 99
	second := credibility.Lookup("https://postcard.news/a")

	// Assert
	if second.Warnings[0] != "Known for misinformation" {
		t.Errorf("registry mutated through returned profile: got %v", second.Warnings[0])
	}
	if second.CredibilityScore != 25 {
		t.Errorf("CredibilityScore: got %v, want 25", second.CredibilityScore)
	}
}

func TestKnownSources_ScoresInRange(t *testing.T) {
	sources := credibility.KnownSources()
	if len(sources) != 19 {
		t.Fatalf("KnownSources: got %d entries, want 19", len(sources))
	}
	if sources[0].Domain != "thehindu.com" {
		t.Errorf("first source: got %v, want thehindu.com", sources[0].Domain)
	}
	for _, s := range sources {
		if s.CredibilityScore < 0 || s.CredibilityScore > 100 {
			t.Errorf("%s: score %d out of range", s.Domain, s.CredibilityScore)
		}
		if got := credibility.Lookup("https://" + s.Domain); got.Domain != s.Domain {
			t.Errorf("Lookup(%s) resolved to %s", s.Domain, got.Domain)
		}
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"https://www.ndtv.com/india", "ndtv.com", true},
		{"www.ndtv.com", "ndtv.com", true},
		{"http://WWW.Example.ORG:8080/path?q=1", "example.org", true},
		{"https://news.www.example.org", "news.www.example.org", true},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := credibility.NormalizeDomain(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeDomain(%q): got (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
