// Package domain contains the core entities shared by use cases and adapters.
package domain

import "time"

// BiasRating is the political lean recorded for a news source.
type BiasRating string

const (
	BiasLeft        BiasRating = "Left"
	BiasCenterLeft  BiasRating = "Center-Left"
	BiasCenter      BiasRating = "Center"
	BiasCenterRight BiasRating = "Center-Right"
	BiasRight       BiasRating = "Right"
	BiasUnknown     BiasRating = "Unknown"
)

// FactualReporting grades a source's track record.
type FactualReporting string

const (
	FactualVeryHigh      FactualReporting = "Very High"
	FactualHigh          FactualReporting = "High"
	FactualMostlyFactual FactualReporting = "Mostly Factual"
	FactualMixed         FactualReporting = "Mixed"
	FactualLow           FactualReporting = "Low"
	FactualVeryLow       FactualReporting = "Very Low"
)

// CredibilityLevel is the coarse band a source falls into.
type CredibilityLevel string

const (
	CredibilityHigh    CredibilityLevel = "High"
	CredibilityMedium  CredibilityLevel = "Medium"
	CredibilityLow     CredibilityLevel = "Low"
	CredibilityUnknown CredibilityLevel = "Unknown"
)

// SourceProfile is the static reputation record for a news domain.
type SourceProfile struct {
	Domain           string           `json:"domain"`
	CredibilityScore int              `json:"credibilityScore"`
	BiasRating       BiasRating       `json:"biasRating"`
	FactualReporting FactualReporting `json:"factualReporting"`
	CredibilityLevel CredibilityLevel `json:"credibilityLevel"`
	Warnings         []string         `json:"warnings"`
	Strengths        []string         `json:"strengths"`
}

// Sentiment is the overall tone of a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// BiasAnalysis is the heuristic reading of one text blob.
type BiasAnalysis struct {
	OverallBias         string    `json:"overallBias"`
	BiasScore           int       `json:"biasScore"`
	Sentiment           Sentiment `json:"sentiment"`
	SentimentScore      int       `json:"sentimentScore"`
	EmotionalLanguage   []string  `json:"emotionalLanguage"`
	FactualStatements   int       `json:"factualStatements"`
	OpinionStatements   int       `json:"opinionStatements"`
	LoadedWords         []string  `json:"loadedWords"`
	ClickbaitScore      int       `json:"clickbaitScore"`
	SensationalismScore int       `json:"sensationalismScore"`
	RedFlags            []string  `json:"redFlags"`
}

// FactCheckResult is one third-party claim review.
type FactCheckResult struct {
	Claim        string `json:"claim"`
	Claimant     string `json:"claimant"`
	ClaimDate    string `json:"claimDate"`
	Rating       string `json:"rating"`
	FactChecker  string `json:"factChecker"`
	URL          string `json:"url"`
	LanguageCode string `json:"languageCode"`
}

// Assessment is the final weighted verdict for an article.
type Assessment struct {
	OverallScore   int      `json:"overallScore"`
	Verdict        string   `json:"verdict"`
	Recommendation string   `json:"recommendation"`
	Concerns       []string `json:"concerns"`
}

// ArticleInput is what a caller submits for checking. Missing fields are empty strings.
type ArticleInput struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// FactCheckReport is the full response of a fact-check request.
type FactCheckReport struct {
	SourceCredibility *SourceProfile    `json:"sourceCredibility"`
	BiasAnalysis      BiasAnalysis      `json:"biasAnalysis"`
	FactChecks        []FactCheckResult `json:"factChecks"`
	Assessment        Assessment        `json:"assessment"`
	Timestamp         time.Time         `json:"timestamp"`
}
