package domain

// SourceArticle is a scraped news item as produced by a site scanner or
// loaded from a daily snapshot file.
type SourceArticle struct {
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
	Content  []string `json:"content,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}

// HasContent reports whether the article carries extracted body text.
func (a SourceArticle) HasContent() bool {
	return len(a.Content) > 0
}

// ContentLength is the total number of characters across all paragraphs.
func (a SourceArticle) ContentLength() int {
	total := 0
	for _, p := range a.Content {
		total += len(p)
	}
	return total
}

// ArticleInfo captures the key facts extracted from an article for
// content generation.
type ArticleInfo struct {
	Title          string
	CompanyName    string
	FundingAmount  string
	Location       string
	Industry       string
	ContentSummary string
}

// LedgerEntry records one processed article in the dedup ledger.
type LedgerEntry struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	DateProcessed string `json:"date_processed"`
	OutputPath    string `json:"output_path"`
}

// ArticleRow is an Article record as stored in the tabular tracker.
type ArticleRow struct {
	ID               string
	Title            string
	SourceURL        string
	Category         string
	PublicationDate  string
	CompanyName      string
	FundingAmount    string
	Content          string
	ProcessingDate   string
	ProcessingStatus string
}
