package storage

import "time"

// nowString formats the current time the way every table stores it.
func nowString() string {
	return time.Now().Format(timeLayout)
}

// Table describes one sheet of the tracker workbook: its fixed name and
// ordered column set. Sheet names follow the original workbook layout;
// both backends must use the same map so exports stay interchangeable.
type Table struct {
	Sheet   string
	Columns []string
}

var (
	articlesTable = Table{
		Sheet: "Статьи",
		Columns: []string{
			"article_id", "title", "source_url", "category",
			"publication_date", "company_name", "funding_amount",
			"article_content", "processing_date", "processing_status",
		},
	}

	contentTable = Table{
		Sheet: "Контент",
		Columns: []string{
			"content_id", "article_id", "title", "source_url", "category",
			"content_type", "language", "content_markdown", "creation_date",
			"status", "scheduled_date", "scheduled_time", "platform",
			"published_date", "published_url", "engagement_stats",
			"tags", "dubskiy_rating", "notes",
		},
	}

	scheduleTable = Table{
		Sheet: "Планирование",
		Columns: []string{
			"schedule_id", "content_id", "platform", "scheduled_date",
			"scheduled_time", "timezone", "posting_status", "priority",
			"campaign_id", "posting_account",
		},
	}

	metadataTable = Table{
		Sheet:   "Метаданные",
		Columns: []string{"key", "value"},
	}

	reelsTable = Table{
		Sheet: "Reels",
		Columns: []string{
			"reel_id", "article_id", "title", "script_markdown",
			"creation_date", "status", "video_url", "notes",
		},
	}

	logsTable = Table{
		Sheet: "Логи",
		Columns: []string{
			"log_id", "article_id", "content_id", "log_type",
			"timestamp", "message", "details",
		},
	}
)

// allTables lists every tracker table in workbook order.
var allTables = []Table{
	contentTable, articlesTable, scheduleTable,
	metadataTable, reelsTable, logsTable,
}

// wideColumns are the text-heavy columns given extra display width.
var wideColumns = map[string]bool{
	"content_markdown": true,
	"article_content":  true,
	"script_markdown":  true,
	"message":          true,
	"details":          true,
}

// defaultMetadata seeds the Метаданные table on first creation.
func defaultMetadata(now string) [][]string {
	return [][]string{
		{"last_update", now},
		{"version", "1.0"},
		{"api_keys", "{}"},
		{"default_settings", `{"default_time": "10:00", "default_timezone": "UTC+3"}`},
		{"platform_settings", "{}"},
	}
}

// pad extends a row to the table's column count so positional decoding
// never indexes out of range.
func pad(row []string, t Table) []string {
	if len(row) >= len(t.Columns) {
		return row
	}
	padded := make([]string, len(t.Columns))
	copy(padded, row)
	return padded
}
