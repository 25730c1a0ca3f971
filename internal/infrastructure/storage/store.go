// Package storage implements the six-table content tracker over
// interchangeable tabular backends (Excel workbook, Google Sheets).
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"StartupContent/internal/domain"
	"StartupContent/internal/ports"
)

const timeLayout = "2006-01-02 15:04:05"

// tableBackend is the seam between the shared tracker logic and a
// concrete storage medium. Every write replaces the whole table.
type tableBackend interface {
	ensureTables(ctx context.Context, tables []Table) error
	readRows(ctx context.Context, t Table) ([][]string, error)
	replaceRows(ctx context.Context, t Table, rows [][]string) error
}

// Store implements the TabularStore contract on top of a tableBackend.
// All row-model, id-generation, logging and metadata bookkeeping lives
// here so both backends behave identically.
type Store struct {
	backend tableBackend
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

var _ ports.TabularStore = (*Store)(nil)

func newStore(backend tableBackend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// NewExcelStore opens (or creates) the workbook at path and returns a
// tracker backed by it.
func NewExcelStore(path string, logger *slog.Logger) (*Store, error) {
	s := newStore(&excelBackend{path: path}, logger)
	if err := s.EnsureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("ensure workbook schema: %w", err)
	}
	return s, nil
}

// NewSheetsStore connects to the remote spreadsheet and returns a
// tracker backed by it, creating missing sheets on first use.
func NewSheetsStore(ctx context.Context, credentialsPath, spreadsheetID string, logger *slog.Logger) (*Store, error) {
	backend, err := newSheetsBackend(ctx, credentialsPath, spreadsheetID)
	if err != nil {
		return nil, err
	}
	s := newStore(backend, logger)
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure spreadsheet schema: %w", err)
	}
	return s, nil
}

// NewMemoryStore returns a tracker over in-process tables. Used by the
// contract test suite and dry runs.
func NewMemoryStore(logger *slog.Logger) *Store {
	s := newStore(newMemoryBackend(), logger)
	_ = s.EnsureSchema(context.Background())
	return s
}

// EnsureSchema idempotently creates the six tables with their columns.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.backend.ensureTables(ctx, allTables)
}

// AddArticle inserts one Article row enriched with the extracted key
// facts and returns its id.
func (s *Store) AddArticle(ctx context.Context, article domain.SourceArticle, info domain.ArticleInfo) (string, error) {
	id := s.newID()
	row := []string{
		id,
		article.Title,
		article.Link,
		article.Category,
		article.Date,
		info.CompanyName,
		info.FundingAmount,
		strings.Join(article.Content, "\n\n"),
		s.now().Format(timeLayout),
		"processed",
	}

	if err := s.appendRow(ctx, articlesTable, row); err != nil {
		return "", fmt.Errorf("add article: %w", err)
	}

	s.touch(ctx)
	_, _ = s.AddLog(ctx, "article_added", "Добавлена новая статья: "+article.Title, id, "", nil)
	return id, nil
}

// AddContent inserts one Content row bound to articleID. When body is
// empty and the draft names a content file, the body is read from it.
func (s *Store) AddContent(ctx context.Context, draft domain.ContentDraft, articleID, body string) (string, error) {
	if body == "" && draft.ContentPath != "" {
		raw, err := os.ReadFile(draft.ContentPath)
		if err != nil {
			s.logger.Warn("cannot read content file", "path", draft.ContentPath, "error", err)
		} else {
			body = string(raw)
		}
	}

	id := s.newID()
	row := []string{
		id,
		articleID,
		draft.Title,
		draft.SourceURL,
		draft.Category,
		string(draft.ContentType),
		string(draft.Language),
		body,
		s.now().Format(timeLayout),
		domain.ContentStatusDraft,
		"", // scheduled_date
		"", // scheduled_time
		draft.Platform,
		"", // published_date
		"", // published_url
		"", // engagement_stats
		draft.Tags,
		draft.Rating,
		draft.Notes,
	}

	if err := s.appendRow(ctx, contentTable, row); err != nil {
		return "", fmt.Errorf("add content: %w", err)
	}

	s.touch(ctx)
	message := fmt.Sprintf("Добавлен новый контент типа %s на языке %s", draft.ContentType, draft.Language)
	_, _ = s.AddLog(ctx, "content_added", message, articleID, id, nil)
	return id, nil
}

// AddReel inserts one short-video script row bound to articleID.
func (s *Store) AddReel(ctx context.Context, articleID, title, script, notes string) (string, error) {
	id := s.newID()
	row := []string{
		id,
		articleID,
		title,
		script,
		s.now().Format(timeLayout),
		domain.ContentStatusDraft,
		"",
		notes,
	}

	if err := s.appendRow(ctx, reelsTable, row); err != nil {
		return "", fmt.Errorf("add reel: %w", err)
	}

	s.touch(ctx)
	_, _ = s.AddLog(ctx, "reel_added", "Добавлен новый скрипт для Instagram Reel: "+title, articleID, "", nil)
	return id, nil
}

// ScheduleContent inserts a Schedule row and flips the matching Content
// row to "scheduled". The schedule table is written first; a crash in
// between leaves the Content row stale with the Schedule row
// authoritative.
func (s *Store) ScheduleContent(ctx context.Context, contentID string, req domain.ScheduleRequest) (string, error) {
	scheduleRows, err := s.backend.readRows(ctx, scheduleTable)
	if err != nil {
		return "", fmt.Errorf("read schedule table: %w", err)
	}
	contentRows, err := s.backend.readRows(ctx, contentTable)
	if err != nil {
		return "", fmt.Errorf("read content table: %w", err)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC+3"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	id := s.newID()
	scheduleRows = append(scheduleRows, []string{
		id,
		contentID,
		req.Platform,
		req.Date,
		req.Time,
		timezone,
		domain.PostingPending,
		priority,
		req.CampaignID,
		req.Account,
	})

	articleID := ""
	for i, row := range contentRows {
		row = pad(row, contentTable)
		if row[0] != contentID {
			continue
		}
		row[9] = domain.ContentStatusScheduled
		row[10] = req.Date
		row[11] = req.Time
		contentRows[i] = row
		articleID = row[1]
	}

	// Schedule first, then content. No cross-table transaction exists.
	if err := s.backend.replaceRows(ctx, scheduleTable, scheduleRows); err != nil {
		return "", fmt.Errorf("write schedule table: %w", err)
	}
	if err := s.backend.replaceRows(ctx, contentTable, contentRows); err != nil {
		return "", fmt.Errorf("write content table: %w", err)
	}

	s.touch(ctx)
	message := fmt.Sprintf("Запланирована публикация контента на %s %s", req.Date, req.Time)
	_, _ = s.AddLog(ctx, "content_scheduled", message, articleID, contentID, nil)
	return id, nil
}

// AddLog appends one audit record. Details are serialized as JSON.
func (s *Store) AddLog(ctx context.Context, logType, message, articleID, contentID string, details any) (string, error) {
	detailsText := ""
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			s.logger.Warn("cannot serialize log details", "log_type", logType, "error", err)
		} else {
			detailsText = string(raw)
		}
	}

	id := s.newID()
	row := []string{
		id,
		articleID,
		contentID,
		logType,
		s.now().Format(timeLayout),
		message,
		detailsText,
	}

	if err := s.appendRow(ctx, logsTable, row); err != nil {
		return "", fmt.Errorf("add log: %w", err)
	}
	return id, nil
}

// UpdateMetadata upserts one key in the Метаданные table.
func (s *Store) UpdateMetadata(ctx context.Context, key, value string) error {
	rows, err := s.backend.readRows(ctx, metadataTable)
	if err != nil {
		return fmt.Errorf("read metadata: %w", err)
	}

	found := false
	for i, row := range rows {
		row = pad(row, metadataTable)
		if row[0] == key {
			row[1] = value
			rows[i] = row
			found = true
		}
	}
	if !found {
		rows = append(rows, []string{key, value})
	}

	if err := s.backend.replaceRows(ctx, metadataTable, rows); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// GetAllArticles returns a full-table snapshot of Статьи.
func (s *Store) GetAllArticles(ctx context.Context) ([]domain.ArticleRow, error) {
	rows, err := s.backend.readRows(ctx, articlesTable)
	if err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}

	articles := make([]domain.ArticleRow, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, decodeArticle(pad(row, articlesTable)))
	}
	return articles, nil
}

// GetAllContent returns a full-table snapshot of Контент.
func (s *Store) GetAllContent(ctx context.Context) ([]domain.ContentRow, error) {
	rows, err := s.backend.readRows(ctx, contentTable)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	content := make([]domain.ContentRow, 0, len(rows))
	for _, row := range rows {
		content = append(content, decodeContent(pad(row, contentTable)))
	}
	return content, nil
}

// GetArticleByID finds one article row; nil without error when absent.
func (s *Store) GetArticleByID(ctx context.Context, articleID string) (*domain.ArticleRow, error) {
	articles, err := s.GetAllArticles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == articleID {
			return &articles[i], nil
		}
	}
	s.logger.Warn("article not found", "article_id", articleID)
	return nil, nil
}

// GetContentByID finds one content row; nil without error when absent.
func (s *Store) GetContentByID(ctx context.Context, contentID string) (*domain.ContentRow, error) {
	content, err := s.GetAllContent(ctx)
	if err != nil {
		return nil, err
	}
	for i := range content {
		if content[i].ID == contentID {
			return &content[i], nil
		}
	}
	s.logger.Warn("content not found", "content_id", contentID)
	return nil, nil
}

// GetReelsByArticleID returns every reel bound to the given article.
func (s *Store) GetReelsByArticleID(ctx context.Context, articleID string) ([]domain.ReelRow, error) {
	rows, err := s.backend.readRows(ctx, reelsTable)
	if err != nil {
		return nil, fmt.Errorf("read reels: %w", err)
	}

	var reels []domain.ReelRow
	for _, row := range rows {
		reel := decodeReel(pad(row, reelsTable))
		if reel.ArticleID == articleID {
			reels = append(reels, reel)
		}
	}
	return reels, nil
}

// GetLogsByArticleID returns every audit record bound to the given article.
func (s *Store) GetLogsByArticleID(ctx context.Context, articleID string) ([]domain.LogRow, error) {
	rows, err := s.backend.readRows(ctx, logsTable)
	if err != nil {
		return nil, fmt.Errorf("read logs: %w", err)
	}

	var logs []domain.LogRow
	for _, row := range rows {
		entry := decodeLog(pad(row, logsTable))
		if entry.ArticleID == articleID {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

// ExportContentToFile writes the body of one content row to path.
func (s *Store) ExportContentToFile(ctx context.Context, contentID, path string) error {
	content, err := s.GetContentByID(ctx, contentID)
	if err != nil {
		return err
	}
	if content == nil || content.Body == "" {
		return fmt.Errorf("content %s has no body to export", contentID)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content.Body), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ImportContentFromFile replaces the body of one content row with the
// contents of path.
func (s *Store) ImportContentFromFile(ctx context.Context, contentID, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	rows, err := s.backend.readRows(ctx, contentTable)
	if err != nil {
		return fmt.Errorf("read content table: %w", err)
	}

	found := false
	for i, row := range rows {
		row = pad(row, contentTable)
		if row[0] == contentID {
			row[7] = string(raw)
			rows[i] = row
			found = true
		}
	}
	if !found {
		return fmt.Errorf("content %s not found", contentID)
	}

	if err := s.backend.replaceRows(ctx, contentTable, rows); err != nil {
		return fmt.Errorf("write content table: %w", err)
	}
	return nil
}

// appendRow performs the read-whole-table, append, rewrite cycle.
func (s *Store) appendRow(ctx context.Context, t Table, row []string) error {
	rows, err := s.backend.readRows(ctx, t)
	if err != nil {
		return err
	}
	rows = append(rows, row)
	return s.backend.replaceRows(ctx, t, rows)
}

// touch refreshes the last_update metadata key; failures are logged
// because metadata staleness must not abort the primary write.
func (s *Store) touch(ctx context.Context) {
	if err := s.UpdateMetadata(ctx, "last_update", s.now().Format(timeLayout)); err != nil {
		s.logger.Warn("cannot refresh last_update", "error", err)
	}
}
