package bootstrap_test

import (
	"context"
	"testing"

	"nayak-niti/internal/bootstrap"
	"nayak-niti/internal/config"
	"nayak-niti/internal/domain"
)

func TestFeedSources_Defaults(t *testing.T) {
	sources := bootstrap.FeedSources(nil)

	if len(sources) != 3 || sources[0].Label != "PIB" {
		t.Errorf("got %+v, want the three built-in feeds", sources)
	}
}

func TestFeedSources_Configured(t *testing.T) {
	sources := bootstrap.FeedSources([]config.FeedConfig{
		{Label: "State Portal", URL: "https://state.example/rss", Limit: 3, PolicyOnly: true, Sectors: []string{"Economy"}},
	})

	if len(sources) != 1 {
		t.Fatalf("got %d sources", len(sources))
	}
	s := sources[0]
	if s.Label != "State Portal" || s.Limit != 3 || !s.PolicyOnly || s.Sectors[0] != "Economy" {
		t.Errorf("got %+v", s)
	}
}

func TestNew_WithoutCredentials(t *testing.T) {
	// Arrange
	cfg := config.Default()

	// Act
	svc, err := bootstrap.New(cfg, bootstrap.Options{})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := svc.CheckArticle.Execute(context.Background(), domain.ArticleInput{URL: "https://www.bbc.com/news"})
	if err != nil {
		t.Fatalf("check article: %v", err)
	}
	if report.SourceCredibility == nil || report.SourceCredibility.Domain != "bbc.com" {
		t.Errorf("profile: got %+v", report.SourceCredibility)
	}

	_, err = svc.Chat.Execute(context.Background(), []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}})
	if err != domain.ErrLLMNotConfigured {
		t.Errorf("chat without key: got %v", err)
	}
}
