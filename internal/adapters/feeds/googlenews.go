package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"nayak-niti/internal/domain"
)

// GoogleNewsEndpoint is the Google News RSS search URL.
const GoogleNewsEndpoint = "https://news.google.com/rss/search"

// GoogleNews searches Google News RSS for Indian English-language headlines.
type GoogleNews struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
}

// NewGoogleNews creates a news searcher. Empty endpoint means GoogleNewsEndpoint;
// a nil client gets a 10s timeout.
func NewGoogleNews(endpoint string, client *http.Client) *GoogleNews {
	if endpoint == "" {
		endpoint = GoogleNewsEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &GoogleNews{endpoint: endpoint, client: client, now: time.Now}
}

// Search returns the headlines matching query in feed order. Items without a
// title or link are skipped.
func (g *GoogleNews) Search(ctx context.Context, query string) ([]domain.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", "en-IN")
	params.Set("gl", "IN")
	params.Set("ceid", "IN:en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search %q: unexpected status %d", query, resp.StatusCode)
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse news feed: %w", err)
	}

	articles := []domain.NewsArticle{}
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		a := domain.NewsArticle{
			Title:       CleanText(item.Title),
			Description: CleanText(item.Description),
			URL:         item.Link,
			Source:      "Google News",
			PublishedAt: g.now().UTC(),
		}
		if item.Source != nil && item.Source.Title != "" {
			a.Source = item.Source.Title
		}
		if item.PubDateParsed != nil {
			a.PublishedAt = item.PubDateParsed.UTC()
		}
		articles = append(articles, a)
	}
	return articles, nil
}
