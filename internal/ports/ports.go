package ports

import (
	"context"
	"time"

	"StartupContent/internal/domain"
)

// ArticleSource pulls fresh articles from upstream providers or snapshots.
type ArticleSource interface {
	FetchDaily(ctx context.Context, day time.Time) ([]domain.SourceArticle, error)
}

// Generator produces social-media copy from extracted article facts.
// A nil/empty result or an error triggers the template fallback inside
// the pipeline.
type Generator interface {
	GeneratePost(ctx context.Context, info domain.ArticleInfo, lang domain.Language) (string, error)
	GenerateReelScript(ctx context.Context, info domain.ArticleInfo) (string, error)
}

// TabularStore is the six-table content tracker contract shared by the
// Excel and Google Sheets backends. Every mutating operation reads the
// whole affected table, transforms it in memory, and rewrites it; there
// is no incremental update primitive. Not-found lookups return a nil
// record (or empty slice) with a nil error.
type TabularStore interface {
	EnsureSchema(ctx context.Context) error

	AddArticle(ctx context.Context, article domain.SourceArticle, info domain.ArticleInfo) (string, error)
	AddContent(ctx context.Context, draft domain.ContentDraft, articleID, body string) (string, error)
	AddReel(ctx context.Context, articleID, title, script, notes string) (string, error)
	ScheduleContent(ctx context.Context, contentID string, req domain.ScheduleRequest) (string, error)
	AddLog(ctx context.Context, logType, message, articleID, contentID string, details any) (string, error)
	UpdateMetadata(ctx context.Context, key, value string) error

	GetAllArticles(ctx context.Context) ([]domain.ArticleRow, error)
	GetAllContent(ctx context.Context) ([]domain.ContentRow, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.ArticleRow, error)
	GetContentByID(ctx context.Context, contentID string) (*domain.ContentRow, error)
	GetReelsByArticleID(ctx context.Context, articleID string) ([]domain.ReelRow, error)
	GetLogsByArticleID(ctx context.Context, articleID string) ([]domain.LogRow, error)

	ExportContentToFile(ctx context.Context, contentID, path string) error
	ImportContentFromFile(ctx context.Context, contentID, path string) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
