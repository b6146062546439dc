package credibility_test

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"nayak-niti/internal/credibility"
	"nayak-niti/internal/domain"
)

func neutralBias() domain.BiasAnalysis {
	return credibility.Analyze("")
}

func claims(ratings ...string) []domain.FactCheckResult {
	out := make([]domain.FactCheckResult, len(ratings))
	for i, r := range ratings {
		out[i] = domain.FactCheckResult{Claim: "claim", Rating: r}
	}
	return out
}

func TestAssess_LowScoreSourceBaseline(t *testing.T) {
	// Arrange
	profile := &domain.SourceProfile{
		Domain:           "example.news",
		CredibilityScore: 25,
		CredibilityLevel: domain.CredibilityMedium,
	}

	// Act
	a := credibility.Assess(profile, neutralBias(), nil)

	// Assert
	if a.OverallScore != 10 {
		t.Errorf("OverallScore: got %v, want 10", a.OverallScore)
	}
	if a.Verdict != "Not Credible" {
		t.Errorf("Verdict: got %v, want Not Credible", a.Verdict)
	}
	want := []string{"DANGER: Known unreliable source (Score: 25/100)"}
	if !reflect.DeepEqual(a.Concerns, want) {
		t.Errorf("Concerns: got %v, want %v", a.Concerns, want)
	}
}

func TestAssess_RegisteredLowSource(t *testing.T) {
	// Arrange
	profile := credibility.Lookup("https://postcard.news/story")

	// Act
	a := credibility.Assess(&profile, neutralBias(), nil)

	// Assert
	if a.OverallScore != 0 {
		t.Errorf("OverallScore: got %v, want 0", a.OverallScore)
	}
	want := []string{
		`Source "postcard.news" has LOW credibility rating`,
		"DANGER: Known unreliable source (Score: 25/100)",
		"Known for misinformation",
		"Extreme bias",
		"Conspiracy theories",
		"No editorial standards",
	}
	if !reflect.DeepEqual(a.Concerns, want) {
		t.Errorf("Concerns: got %v, want %v", a.Concerns, want)
	}
}

func TestAssess_UnknownSource(t *testing.T) {
	// Arrange
	profile := credibility.Lookup("randomblog.example")

	// Act
	a := credibility.Assess(&profile, neutralBias(), nil)

	// Assert
	if a.OverallScore != 6 {
		t.Errorf("OverallScore: got %v, want 6", a.OverallScore)
	}
	if a.Verdict != "Not Credible" {
		t.Errorf("Verdict: got %v, want Not Credible", a.Verdict)
	}
	if len(a.Concerns) != 6 || a.Concerns[0] != `Source "randomblog.example" is UNVERIFIED` {
		t.Errorf("Concerns: got %v", a.Concerns)
	}
}

func TestAssess_NoSource(t *testing.T) {
	a := credibility.Assess(nil, neutralBias(), nil)

	if a.OverallScore != 30 {
		t.Errorf("OverallScore: got %v, want 30", a.OverallScore)
	}
	if a.Verdict != "Very Low Reliability" {
		t.Errorf("Verdict: got %v, want Very Low Reliability", a.Verdict)
	}
	if !reflect.DeepEqual(a.Concerns, []string{"No source URL provided - cannot verify origin"}) {
		t.Errorf("Concerns: got %v", a.Concerns)
	}
}

func TestAssess_Adjustments(t *testing.T) {
	reuters := credibility.Lookup("https://www.reuters.com/world")

	tests := []struct {
		name         string
		profile      *domain.SourceProfile
		bias         func(b *domain.BiasAnalysis)
		claims       []domain.FactCheckResult
		wantScore    int
		wantConcerns []string
	}{
		{
			name:         "clickbait",
			profile:      &reuters,
			bias:         func(b *domain.BiasAnalysis) { b.ClickbaitScore = 60 },
			wantScore:    26,
			wantConcerns: []string{"CLICKBAIT detected (Score: 60/100)"},
		},
		{
			name:      "clickbait at threshold",
			profile:   &reuters,
			bias:      func(b *domain.BiasAnalysis) { b.ClickbaitScore = 20 },
			wantScore: 38,
		},
		{
			name:         "sensationalism rounds",
			profile:      &reuters,
			bias:         func(b *domain.BiasAnalysis) { b.SensationalismScore = 40 },
			wantScore:    32,
			wantConcerns: []string{"HIGH sensationalism detected (Score: 40/100)"},
		},
		{
			name:    "extreme bias",
			profile: nil,
			bias: func(b *domain.BiasAnalysis) {
				b.BiasScore = 60
				b.OverallBias = "Strong Right bias"
			},
			wantScore: 15,
			wantConcerns: []string{
				"No source URL provided - cannot verify origin",
				"EXTREME Strong Right bias detected",
			},
		},
		{
			name:    "strong bias",
			profile: &reuters,
			bias: func(b *domain.BiasAnalysis) {
				b.BiasScore = -45
				b.OverallBias = "Strong Left bias"
			},
			wantScore:    28,
			wantConcerns: []string{"Strong Strong Left bias detected"},
		},
		{
			name:         "emotional language",
			profile:      &reuters,
			bias:         func(b *domain.BiasAnalysis) { b.EmotionalLanguage = []string{"a", "b", "c", "d", "e", "f"} },
			wantScore:    28,
			wantConcerns: []string{"Excessive emotional/loaded language (6 instances)"},
		},
		{
			name:         "heavily opinionated",
			profile:      &reuters,
			bias:         func(b *domain.BiasAnalysis) { b.OpinionStatements = 4 },
			wantScore:    23,
			wantConcerns: []string{"Content is HEAVILY opinion-based (4 opinion vs 1 factual)"},
		},
		{
			name:         "more opinion than fact",
			profile:      &reuters,
			bias:         func(b *domain.BiasAnalysis) { b.OpinionStatements = 2 },
			wantScore:    30,
			wantConcerns: []string{"More opinion than facts detected"},
		},
		{
			name:         "red flags",
			profile:      &reuters,
			bias:         func(b *domain.BiasAnalysis) { b.RedFlags = []string{"one", "two", "three"} },
			wantScore:    23,
			wantConcerns: []string{"one", "two", "three"},
		},
		{
			name:         "false claims",
			profile:      &reuters,
			claims:       claims("False", "Mostly False", "Unverified"),
			wantScore:    8,
			wantConcerns: []string{"2 related claim(s) marked as FALSE/MISLEADING by fact-checkers"},
		},
		{
			name:      "true claims",
			profile:   &reuters,
			claims:    claims("True", "Accurate", "Correct"),
			wantScore: 53,
		},
		{
			name:         "incorrect counts both ways",
			profile:      &reuters,
			claims:       claims("Incorrect"),
			wantScore:    28,
			wantConcerns: []string{"1 related claim(s) marked as FALSE/MISLEADING by fact-checkers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			bias := neutralBias()
			if tt.bias != nil {
				tt.bias(&bias)
			}

			// Act
			a := credibility.Assess(tt.profile, bias, tt.claims)

			// Assert
			if a.OverallScore != tt.wantScore {
				t.Errorf("OverallScore: got %v, want %v", a.OverallScore, tt.wantScore)
			}
			want := tt.wantConcerns
			if want == nil {
				want = []string{}
			}
			if !reflect.DeepEqual(a.Concerns, want) {
				t.Errorf("Concerns: got %v, want %v", a.Concerns, want)
			}
		})
	}
}

func TestAssess_ClampsAtZero(t *testing.T) {
	// Arrange
	bias := credibility.Analyze(strings.Repeat("SHOCKING BOMBSHELL!!! they want you to believe this devastating scandal. ", 5))

	// Act
	a := credibility.Assess(nil, bias, claims("False", "False", "False"))

	// Assert
	if a.OverallScore != 0 {
		t.Errorf("OverallScore: got %v, want 0", a.OverallScore)
	}
	if a.Verdict != "Not Credible" {
		t.Errorf("Verdict: got %v, want Not Credible", a.Verdict)
	}
}

func TestVerdict_Tiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Highly Reliable"},
		{85, "Highly Reliable"},
		{84, "Generally Reliable"},
		{70, "Generally Reliable"},
		{69, "Mixed Reliability"},
		{55, "Mixed Reliability"},
		{54, "Low Reliability"},
		{40, "Low Reliability"},
		{39, "Very Low Reliability"},
		{25, "Very Low Reliability"},
		{24, "Not Credible"},
		{0, "Not Credible"},
	}

	for _, tt := range tests {
		got, rec := credibility.Verdict(tt.score)
		if got != tt.want {
			t.Errorf("Verdict(%d): got %q, want %q", tt.score, got, tt.want)
		}
		if rec == "" {
			t.Errorf("Verdict(%d): empty recommendation", tt.score)
		}
	}
}

func TestRatingClassification(t *testing.T) {
	tests := []struct {
		rating    string
		wantFalse bool
		wantTrue  bool
	}{
		{"Mostly False", true, false},
		{"Accurate", false, true},
		{"Unverified", false, false},
		{"MISLEADING", true, false},
		{"Half True", false, true},
		{"Incorrect", true, true},
	}

	for _, tt := range tests {
		if got := credibility.IsFalseRating(tt.rating); got != tt.wantFalse {
			t.Errorf("IsFalseRating(%q): got %v, want %v", tt.rating, got, tt.wantFalse)
		}
		if got := credibility.IsTrueRating(tt.rating); got != tt.wantTrue {
			t.Errorf("IsTrueRating(%q): got %v, want %v", tt.rating, got, tt.wantTrue)
		}
	}
}

func TestCapClaims(t *testing.T) {
	in := claims("a", "b", "c", "d", "e", "f", "g")
	got := credibility.CapClaims(in)
	if len(got) != 5 || got[4].Rating != "e" {
		t.Errorf("CapClaims: got %v", got)
	}
	if len(credibility.CapClaims(nil)) != 0 {
		t.Errorf("CapClaims(nil) should be empty")
	}
}

func TestRules_Order(t *testing.T) {
	want := []string{
		"source-baseline", "source-reputation", "clickbait", "sensationalism",
		"political-bias", "emotional-language", "opinion-balance", "red-flags", "claim-reviews",
	}
	var got []string
	for _, r := range credibility.Rules {
		got = append(got, r.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rules: got %v, want %v", got, want)
	}
}

var vocabulary = []string{
	"shocking", "you won't believe", "devastating", "crisis", "bombshell", "allegedly",
	"sources claim", "always", "never", "totally", "wake up", "censored", "progressive",
	"liberal", "conservative", "patriotic", "good", "great", "bad", "corrupt",
	"according to", "data shows", "i think", "should", "must", "BREAKING", "NEWS", "!!!",
	"???", "the", "government", "policy", "ballot", "rights", "welfare",
}

func randomText(r *rand.Rand) string {
	n := r.Intn(80)
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[r.Intn(len(vocabulary))]
	}
	return strings.Join(words, " ")
}

func TestAnalyzeAndAssess_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	sources := credibility.KnownSources()
	ratings := []string{"False", "True", "Misleading", "Accurate", "Unverified", "Mostly True", "Incorrect"}

	for i := 0; i < 500; i++ {
		text := randomText(r)
		bias := credibility.Analyze(text)

		if bias.FactualStatements < 1 {
			t.Fatalf("FactualStatements < 1 for %q", text)
		}
		if bias.OpinionStatements < 0 {
			t.Fatalf("OpinionStatements < 0 for %q", text)
		}
		if bias.BiasScore < -100 || bias.BiasScore > 100 {
			t.Fatalf("BiasScore %d out of range for %q", bias.BiasScore, text)
		}
		if bias.ClickbaitScore < 0 || bias.ClickbaitScore > 100 || bias.SensationalismScore < 0 || bias.SensationalismScore > 100 {
			t.Fatalf("scores out of range: %+v", bias)
		}
		if len(bias.EmotionalLanguage) > 10 {
			t.Fatalf("EmotionalLanguage too long: %d", len(bias.EmotionalLanguage))
		}
		if again := credibility.Analyze(text); !reflect.DeepEqual(bias, again) {
			t.Fatalf("Analyze not idempotent for %q", text)
		}

		var profile *domain.SourceProfile
		if k := r.Intn(len(sources) + 1); k < len(sources) {
			p := sources[k]
			profile = &p
		}
		var cs []domain.FactCheckResult
		for j := r.Intn(8); j > 0; j-- {
			cs = append(cs, domain.FactCheckResult{Rating: ratings[r.Intn(len(ratings))]})
		}
		cs = credibility.CapClaims(cs)

		a := credibility.Assess(profile, bias, cs)
		if a.OverallScore < 0 || a.OverallScore > 100 {
			t.Fatalf("OverallScore %d out of range", a.OverallScore)
		}
		if verdict, rec := credibility.Verdict(a.OverallScore); verdict != a.Verdict || rec != a.Recommendation {
			t.Fatalf("verdict mismatch for score %d: %q", a.OverallScore, a.Verdict)
		}
		if again := credibility.Assess(profile, bias, cs); !reflect.DeepEqual(a, again) {
			t.Fatalf("Assess not idempotent")
		}
	}
}
