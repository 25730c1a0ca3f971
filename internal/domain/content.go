package domain

// Language selects the output language of generated content.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// ContentType enumerates the kinds of generated posts.
type ContentType string

const (
	ContentTelegramPost ContentType = "telegram_post"
	ContentLinkedInPost ContentType = "linkedin_post"
)

// Content lifecycle statuses.
const (
	ContentStatusDraft     = "draft"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
)

// Posting statuses for schedule rows.
const (
	PostingPending = "pending"
	PostingPosted  = "posted"
	PostingFailed  = "failed"
)

// ContentDraft carries the caller-supplied fields of a new Content row.
// Body text is passed separately; when it is empty and ContentPath is
// set, the store reads the body from that file.
type ContentDraft struct {
	Title       string
	SourceURL   string
	Category    string
	ContentType ContentType
	Language    Language
	Platform    string
	Tags        string
	Rating      string
	Notes       string
	ContentPath string
}

// ContentRow is a Content record as stored in the tabular tracker.
type ContentRow struct {
	ID            string
	ArticleID     string
	Title         string
	SourceURL     string
	Category      string
	ContentType   string
	Language      string
	Body          string
	CreationDate  string
	Status        string
	ScheduledDate string
	ScheduledTime string
	Platform      string
	PublishedDate string
	PublishedURL  string
	Engagement    string
	Tags          string
	Rating        string
	Notes         string
}

// ReelRow is a short-video script record bound to an article.
type ReelRow struct {
	ID           string
	ArticleID    string
	Title        string
	Script       string
	CreationDate string
	Status       string
	VideoURL     string
	Notes        string
}

// ScheduleRequest carries the caller-supplied fields of a new Schedule row.
type ScheduleRequest struct {
	Platform   string
	Date       string
	Time       string
	Timezone   string
	Priority   string
	CampaignID string
	Account    string
}

// ScheduleRow is a Schedule record as stored in the tabular tracker.
type ScheduleRow struct {
	ID            string
	ContentID     string
	Platform      string
	ScheduledDate string
	ScheduledTime string
	Timezone      string
	PostingStatus string
	Priority      string
	CampaignID    string
	Account       string
}

// LogRow is one append-only audit record.
type LogRow struct {
	ID        string
	ArticleID string
	ContentID string
	LogType   string
	Timestamp string
	Message   string
	Details   string
}
