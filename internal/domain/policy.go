package domain

// Policy is a government policy record shown to citizens.
type Policy struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	Category        string   `json:"category" yaml:"category"`
	Status          string   `json:"status" yaml:"status"`
	DateIntroduced  string   `json:"dateIntroduced" yaml:"date_introduced"`
	LastUpdated     string   `json:"lastUpdated" yaml:"last_updated"`
	AffectedSectors []string `json:"affectedSectors" yaml:"affected_sectors"`
	KeyPoints       []string `json:"keyPoints" yaml:"key_points"`
	Source          string   `json:"source" yaml:"source"`
	SourceURL       string   `json:"sourceUrl" yaml:"source_url"`
	Impact          string   `json:"impact" yaml:"impact"`
	RelevanceScore  *float64 `json:"relevanceScore,omitempty" yaml:"-"`
}

// PolicyCategory counts policies sharing a category.
type PolicyCategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PolicyListing is the response of a policy listing request.
type PolicyListing struct {
	Policies    []Policy         `json:"policies"`
	Categories  []PolicyCategory `json:"categories"`
	Total       int              `json:"total"`
	Sources     []string         `json:"sources"`
	LastUpdated string           `json:"lastUpdated"`
	IsLiveData  bool             `json:"isLiveData"`
}

// PolicyBatch is what one upstream feed produced in a refresh.
type PolicyBatch struct {
	Source   string
	Policies []Policy
}
