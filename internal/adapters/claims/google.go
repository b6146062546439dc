// Package claims looks up third-party claim reviews.
package claims

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"nayak-niti/internal/domain"
)

// DefaultEndpoint is the Google Fact Check Tools claim search URL.
const DefaultEndpoint = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// GoogleFactCheck searches the Google Fact Check Tools API.
type GoogleFactCheck struct {
	apiKey       string
	endpoint     string
	languageCode string
	client       *http.Client
}

// Config configures a GoogleFactCheck client.
type Config struct {
	APIKey       string
	Endpoint     string
	LanguageCode string
	Timeout      time.Duration
}

// NewGoogleFactCheck creates a claim search client. Empty fields get defaults.
func NewGoogleFactCheck(cfg Config) *GoogleFactCheck {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &GoogleFactCheck{
		apiKey:       cfg.APIKey,
		endpoint:     cfg.Endpoint,
		languageCode: cfg.LanguageCode,
		client:       &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Claims []struct {
		Text         string `json:"text"`
		Claimant     string `json:"claimant"`
		ClaimDate    string `json:"claimDate"`
		LanguageCode string `json:"languageCode"`
		ClaimReview  []struct {
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
			Publisher     struct {
				Name string `json:"name"`
			} `json:"publisher"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Search returns claim reviews matching query. Without an API key it returns
// domain.ErrClaimSearchDisabled and makes no request.
func (g *GoogleFactCheck) Search(ctx context.Context, query string) ([]domain.FactCheckResult, error) {
	if g.apiKey == "" {
		return nil, domain.ErrClaimSearchDisabled
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("languageCode", g.languageCode)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build claim search request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("claim search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("claim search: status %d: %s", resp.StatusCode, body)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode claim search response: %w", err)
	}

	results := make([]domain.FactCheckResult, 0, len(payload.Claims))
	for _, c := range payload.Claims {
		r := domain.FactCheckResult{
			Claim:        c.Text,
			Claimant:     orDefault(c.Claimant, "Unknown"),
			ClaimDate:    c.ClaimDate,
			Rating:       "Not Rated",
			FactChecker:  "Unknown",
			LanguageCode: orDefault(c.LanguageCode, "en"),
		}
		if len(c.ClaimReview) > 0 {
			review := c.ClaimReview[0]
			r.Rating = orDefault(review.TextualRating, r.Rating)
			r.FactChecker = orDefault(review.Publisher.Name, r.FactChecker)
			r.URL = review.URL
		}
		results = append(results, r)
	}
	return results, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
