package usecases

import (
	"context"
	"strings"

	"nayak-niti/internal/domain"
	"nayak-niti/pkg/log"
)

const maxNewsArticles = 6

// NewsSearcher defines the interface for a headline search backend.
type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]domain.NewsArticle, error)
}

// PoliticianNewsUseCase gathers recent headlines about a politician.
type PoliticianNewsUseCase struct {
	news  NewsSearcher
	limit int
}

// NewPoliticianNewsUseCase creates a new PoliticianNewsUseCase. A non-positive
// limit means six articles.
func NewPoliticianNewsUseCase(news NewsSearcher, limit int) *PoliticianNewsUseCase {
	if limit <= 0 {
		limit = maxNewsArticles
	}
	return &PoliticianNewsUseCase{news: news, limit: limit}
}

// Execute runs the politician's queries in order until enough articles are
// found. It fails only when every query failed.
func (uc *PoliticianNewsUseCase) Execute(ctx context.Context, q domain.NewsQuery) (*domain.NewsListing, error) {
	if strings.TrimSpace(q.Name) == "" {
		return nil, domain.ErrMissingPoliticianName
	}

	var gathered []domain.NewsArticle
	failures := 0
	queries := NewsQueries(q)
	for _, query := range queries {
		if len(gathered) >= uc.limit {
			break
		}
		articles, err := uc.news.Search(ctx, query)
		if err != nil {
			failures++
			log.GlobalWarnCtx(ctx, "news query failed", "query", query, "error", err)
			continue
		}
		gathered = append(gathered, articles...)
	}

	if failures == len(queries) {
		return nil, domain.ErrNewsUnavailable
	}

	unique := dedupeByURL(gathered)
	listing := &domain.NewsListing{Articles: unique, TotalFound: len(unique)}
	if len(unique) > uc.limit {
		listing.Articles = unique[:uc.limit]
	}
	return listing, nil
}

// NewsQueries returns the search queries for a politician, broadest first.
func NewsQueries(q domain.NewsQuery) []string {
	name := strings.TrimSpace(q.Name)
	queries := []string{name + " India politics"}
	if c := strings.TrimSpace(q.Constituency); c != "" {
		queries = append(queries, name+" "+c)
	}
	if p := strings.TrimSpace(q.Party); p != "" {
		queries = append(queries, name+" "+p)
	}
	if s := strings.TrimSpace(q.State); s != "" {
		queries = append(queries, name+" "+s+" MP MLA")
	}
	return queries
}

func dedupeByURL(articles []domain.NewsArticle) []domain.NewsArticle {
	seen := make(map[string]bool, len(articles))
	out := []domain.NewsArticle{}
	for _, a := range articles {
		if seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		out = append(out, a)
	}
	return out
}
