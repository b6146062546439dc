package domain

import "time"

// NewsArticle is a headline about a politician.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	URLToImage  *string   `json:"urlToImage"`
}

// NewsQuery identifies the politician to search news for.
type NewsQuery struct {
	Name         string
	Constituency string
	State        string
	Party        string
}

// NewsListing is the response of a politician news request.
type NewsListing struct {
	Articles   []NewsArticle `json:"articles"`
	TotalFound int           `json:"totalFound"`
}
