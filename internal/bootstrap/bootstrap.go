// Package bootstrap builds the adapters and use cases from configuration.
package bootstrap

import (
	"fmt"
	"net/http"

	"nayak-niti/internal/adapters/cache"
	"nayak-niti/internal/adapters/claims"
	"nayak-niti/internal/adapters/feeds"
	"nayak-niti/internal/adapters/llm"
	"nayak-niti/internal/config"
	"nayak-niti/internal/usecases"
)

// Services holds the use cases shared by the server and the CLI.
type Services struct {
	CheckArticle   *usecases.CheckArticleUseCase
	ListPolicies   *usecases.ListPoliciesUseCase
	Chat           *usecases.ChatUseCase
	PoliticianNews *usecases.PoliticianNewsUseCase
	PolicyCache    *cache.PolicyCache
}

// Options adjusts how services are built.
type Options struct {
	// DisableClaims skips the claim review search entirely.
	DisableClaims bool
}

// New wires every adapter described by cfg.
func New(cfg *config.Config, opts Options) (*Services, error) {
	fallback, err := feeds.LoadFallback()
	if err != nil {
		return nil, fmt.Errorf("load fallback policies: %w", err)
	}

	var claimSearch usecases.ClaimSearcher
	if !opts.DisableClaims {
		claimSearch = claims.NewGoogleFactCheck(claims.Config{
			APIKey:       cfg.FactCheck.APIKey,
			Endpoint:     cfg.FactCheck.Endpoint,
			LanguageCode: cfg.FactCheck.LanguageCode,
			Timeout:      cfg.FactCheck.Timeout,
		})
	}

	feedClient := &http.Client{Timeout: cfg.Policies.FetchTimeout}
	var policyFeeds []usecases.PolicyFeed
	for _, src := range FeedSources(cfg.Policies.Feeds) {
		policyFeeds = append(policyFeeds, feeds.NewGovernmentFeed(src, feedClient))
	}

	policyCache := cache.NewPolicyCache(cfg.Policies.CacheTTL)

	completer := llm.NewGroq(llm.Config{
		APIKey:      cfg.Chat.APIKey,
		BaseURL:     cfg.Chat.BaseURL,
		Model:       cfg.Chat.Model,
		MaxTokens:   cfg.Chat.MaxTokens,
		Temperature: cfg.Chat.Temperature,
		TopP:        cfg.Chat.TopP,
	})

	news := feeds.NewGoogleNews(cfg.News.Endpoint, &http.Client{Timeout: cfg.News.Timeout})

	return &Services{
		CheckArticle:   usecases.NewCheckArticleUseCase(claimSearch, cfg.FactCheck.Timeout),
		ListPolicies:   usecases.NewListPoliciesUseCase(policyCache, fallback, policyFeeds...),
		Chat:           usecases.NewChatUseCase(completer, cfg.Chat.Timeout),
		PoliticianNews: usecases.NewPoliticianNewsUseCase(news, cfg.News.Limit),
		PolicyCache:    policyCache,
	}, nil
}

// FeedSources converts configured feeds into feed sources. No configured
// feeds means the built-in government feeds.
func FeedSources(configured []config.FeedConfig) []feeds.Source {
	if len(configured) == 0 {
		return feeds.DefaultSources()
	}

	sources := make([]feeds.Source, 0, len(configured))
	for _, f := range configured {
		sources = append(sources, feeds.Source{
			Label:              f.Label,
			URL:                f.URL,
			Publisher:          f.Publisher,
			HomeURL:            f.HomeURL,
			Status:             f.Status,
			Limit:              f.Limit,
			PolicyOnly:         f.PolicyOnly,
			UserAgent:          f.UserAgent,
			Category:           f.Category,
			Impact:             f.Impact,
			Sectors:            f.Sectors,
			DefaultDescription: f.DefaultDescription,
		})
	}
	return sources
}
