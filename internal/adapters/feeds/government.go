// Package feeds turns government RSS feeds and news search results into
// domain records.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"nayak-niti/internal/domain"
)

// DefaultUserAgent is sent to portals that reject bare HTTP clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Source describes one government feed and how its items become policies.
// Category, Impact and Sectors override the keyword heuristics when set.
type Source struct {
	Label              string
	URL                string
	Publisher          string
	HomeURL            string
	Status             string
	Limit              int
	PolicyOnly         bool
	UserAgent          string
	Category           string
	Impact             string
	Sectors            []string
	DefaultDescription string
}

// DefaultSources returns the PIB, India.gov.in and Finance Ministry feeds.
func DefaultSources() []Source {
	return []Source{
		{
			Label:      "PIB",
			URL:        "https://pib.gov.in/RssMain.aspx?ModId=3&Lang=1",
			Publisher:  "Press Information Bureau (PIB)",
			HomeURL:    "https://pib.gov.in",
			Status:     "Announced",
			Limit:      20,
			PolicyOnly: true,
		},
		{
			Label:      "India.gov",
			URL:        "https://www.india.gov.in/rss-feeds/latest-news",
			Publisher:  "India.gov.in",
			HomeURL:    "https://www.india.gov.in",
			Status:     "Under Review",
			Limit:      15,
			PolicyOnly: true,
			UserAgent:  DefaultUserAgent,
		},
		{
			Label:              "Finance Ministry",
			URL:                "https://www.finmin.nic.in/rss/whatsnew",
			Publisher:          "Ministry of Finance",
			HomeURL:            "https://www.finmin.nic.in",
			Status:             "Implemented",
			Limit:              10,
			Category:           "Economy",
			Impact:             "High",
			Sectors:            []string{"Economy", "Finance", "Business"},
			DefaultDescription: "Financial policy and economic measures by the Ministry of Finance",
		},
	}
}

// GovernmentFeed fetches one Source and extracts policies from it.
type GovernmentFeed struct {
	source Source
	client *http.Client
	now    func() time.Time
}

// NewGovernmentFeed creates a fetcher for source. A nil client gets a 10s timeout.
func NewGovernmentFeed(source Source, client *http.Client) *GovernmentFeed {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &GovernmentFeed{source: source, client: client, now: time.Now}
}

// Label names the feed in listings and logs.
func (f *GovernmentFeed) Label() string {
	return f.source.Label
}

// Fetch downloads and parses the feed.
func (f *GovernmentFeed) Fetch(ctx context.Context) ([]domain.Policy, error) {
	feed, err := fetchFeed(ctx, f.client, f.source.URL, f.source.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.source.Label, err)
	}
	return f.extract(feed.Items), nil
}

func (f *GovernmentFeed) extract(items []*gofeed.Item) []domain.Policy {
	if f.source.Limit > 0 && len(items) > f.source.Limit {
		items = items[:f.source.Limit]
	}

	today := f.now().UTC().Format("2006-01-02")
	policies := []domain.Policy{}
	for _, item := range items {
		if item.Title == "" {
			continue
		}
		if f.source.PolicyOnly && !IsPolicyRelated(item.Title) {
			continue
		}

		raw := item.Description
		if raw == "" {
			raw = item.Content
		}
		body := CleanText(raw)
		description := CleanDescription(raw)
		if description == "" {
			description = f.source.DefaultDescription
		}
		signal := item.Title + " " + body

		p := domain.Policy{
			Title:           CleanText(item.Title),
			Description:     description,
			Category:        f.source.Category,
			Status:          f.source.Status,
			DateIntroduced:  today,
			AffectedSectors: append([]string(nil), f.source.Sectors...),
			KeyPoints:       KeyPoints(body),
			Source:          f.source.Publisher,
			SourceURL:       item.Link,
			Impact:          f.source.Impact,
		}
		if item.PublishedParsed != nil {
			p.DateIntroduced = item.PublishedParsed.UTC().Format("2006-01-02")
		}
		if p.SourceURL == "" {
			p.SourceURL = f.source.HomeURL
		}
		if p.Category == "" {
			p.Category = Categorize(signal)
		}
		if p.Impact == "" {
			p.Impact = Impact(signal)
		}
		if len(p.AffectedSectors) == 0 {
			p.AffectedSectors = Sectors(signal)
		}
		policies = append(policies, p)
	}
	return policies
}

func fetchFeed(ctx context.Context, client *http.Client, url, userAgent string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return gofeed.NewParser().Parse(resp.Body)
}
