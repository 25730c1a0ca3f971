package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"StartupContent/internal/domain"
	"StartupContent/internal/infrastructure/snapshot"
	"StartupContent/internal/ledger"
	"StartupContent/internal/ports"
	"StartupContent/internal/rating"
	"StartupContent/internal/selector"
)

const (
	tagsRussian = "#стартапы #инновации #технологии #евгенийдубский #эрартаэйай"
	tagsEnglish = "#analytics #businesscases #startupexperience #evgeniydubskiy #erartaai"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.ArticleSource
	Snapshots *snapshot.Store
	Ledger    *ledger.Ledger
	Selector  *selector.Selector
	Generator ports.Generator
	Fallback  ports.Generator
	Tracker   ports.TabularStore
	OutputDir string
	Logger    *slog.Logger
}

// Pipeline implements the daily content-creation workflow: fetch,
// select, generate in both languages, write the artifact directory and
// record everything in the tracker and the ledger.
type Pipeline struct {
	source    ports.ArticleSource
	snapshots *snapshot.Store
	ledger    *ledger.Ledger
	selector  *selector.Selector
	generator ports.Generator
	fallback  ports.Generator
	tracker   ports.TabularStore
	outputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:    deps.Source,
		snapshots: deps.Snapshots,
		ledger:    deps.Ledger,
		selector:  deps.Selector,
		generator: deps.Generator,
		fallback:  deps.Fallback,
		tracker:   deps.Tracker,
		outputDir: deps.OutputDir,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessDay runs one full content-creation cycle for the given day.
// Tracker failures are logged and do not abort the run; the ledger is
// updated last so a crashed run can be retried.
func (p *Pipeline) ProcessDay(ctx context.Context, day time.Time) error {
	if p.source == nil {
		return nil
	}

	articles, err := p.source.FetchDaily(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch daily: %w", err)
	}
	p.logger.Info("fetched articles", "count", len(articles), "day", day.Format("2006-01-02"))

	batch := articles
	if p.snapshots != nil {
		if err := p.snapshots.Save(day, articles); err != nil {
			p.logger.Error("cannot save article snapshot", "error", err)
		}
		if merged, err := p.snapshots.Load(day); err != nil {
			p.logger.Error("cannot load article snapshot", "error", err)
		} else if len(merged) > 0 {
			batch = merged
		}
	}

	best := p.selector.SelectBest(batch)
	if best == nil {
		p.logger.Warn("no suitable article found, skipping run")
		return nil
	}

	info := ExtractKeyInfo(*best)

	articleDir, err := p.createArticleDirectory(best.Title)
	if err != nil {
		return fmt.Errorf("create article directory: %w", err)
	}

	russianPost := p.generatePost(ctx, info, domain.LanguageRussian)
	englishPost := p.generatePost(ctx, info, domain.LanguageEnglish)
	reelScript := p.generateReelScript(ctx, info)

	p.saveArtifact(filepath.Join(articleDir, "telegram_post_ru.md"), russianPost)
	p.saveArtifact(filepath.Join(articleDir, "linkedin_post_en.md"), englishPost)
	p.saveArtifact(filepath.Join(articleDir, "reels", "reel_script.md"), reelScript)
	p.saveArticleInfo(articleDir, *best)

	if p.tracker != nil {
		p.record(ctx, *best, info, articleDir, russianPost, englishPost, reelScript)
	}

	// Marked last: every artifact above exists before the article is
	// considered done, so a crash mid-run leads to a retry, not a gap.
	p.ledger.MarkProcessed(*best, articleDir)

	p.logger.Info("content generation completed", "title", best.Title, "dir", articleDir)
	return nil
}

func (p *Pipeline) generatePost(ctx context.Context, info domain.ArticleInfo, lang domain.Language) string {
	if p.generator != nil {
		post, err := p.generator.GeneratePost(ctx, info, lang)
		if err == nil && post != "" {
			return post
		}
		p.logger.Warn("model generation failed, using templates", "language", lang, "error", err)
	}

	post, err := p.fallback.GeneratePost(ctx, info, lang)
	if err != nil {
		p.logger.Error("template generation failed", "language", lang, "error", err)
		return ""
	}
	return post
}

func (p *Pipeline) generateReelScript(ctx context.Context, info domain.ArticleInfo) string {
	if p.generator != nil {
		script, err := p.generator.GenerateReelScript(ctx, info)
		if err == nil && script != "" {
			return script
		}
		p.logger.Warn("model reel generation failed, using templates", "error", err)
	}

	script, err := p.fallback.GenerateReelScript(ctx, info)
	if err != nil {
		p.logger.Error("template reel generation failed", "error", err)
		return ""
	}
	return script
}

// record persists the article, both posts and the reel script into the
// tabular tracker. Any failure is logged and skipped: the tracker is a
// reporting surface, not the source of truth for processing state.
func (p *Pipeline) record(ctx context.Context, article domain.SourceArticle, info domain.ArticleInfo, articleDir, russianPost, englishPost, reelScript string) {
	articleID, err := p.tracker.AddArticle(ctx, article, info)
	if err != nil {
		p.logger.Error("cannot add article to tracker", "error", err)
		return
	}

	russianDraft := domain.ContentDraft{
		Title:       article.Title,
		SourceURL:   article.Link,
		Category:    article.Category,
		ContentType: domain.ContentTelegramPost,
		Language:    domain.LanguageRussian,
		Platform:    "Telegram",
		Tags:        tagsRussian,
		Rating:      rating.Format(info, domain.LanguageRussian),
		Notes:       "Автоматически сгенерированный пост",
	}
	if _, err := p.tracker.AddContent(ctx, russianDraft, articleID, russianPost); err != nil {
		p.logger.Error("cannot add Russian content to tracker", "error", err)
	}

	englishDraft := domain.ContentDraft{
		Title:       article.Title,
		SourceURL:   article.Link,
		Category:    article.Category,
		ContentType: domain.ContentLinkedInPost,
		Language:    domain.LanguageEnglish,
		Platform:    "LinkedIn",
		Tags:        tagsEnglish,
		Rating:      rating.Format(info, domain.LanguageEnglish),
		Notes:       "Automatically generated post",
	}
	if _, err := p.tracker.AddContent(ctx, englishDraft, articleID, englishPost); err != nil {
		p.logger.Error("cannot add English content to tracker", "error", err)
	}

	level := rating.LevelFor(rating.Score(info.FundingAmount))
	reelNotes := fmt.Sprintf("Dubskiy Rating: %s (%d/5)", level.Symbol, level.Score)
	if _, err := p.tracker.AddReel(ctx, articleID, "Instagram Reel: "+article.Title, reelScript, reelNotes); err != nil {
		p.logger.Error("cannot add reel script to tracker", "error", err)
	}
}

// createArticleDirectory builds output/<date>_<sanitized title>/ with
// the reels/ and logs/ subdirectories.
func (p *Pipeline) createArticleDirectory(title string) (string, error) {
	dirName := fmt.Sprintf("%s_%s", p.now().Format("2006-01-02"), SanitizeTitle(title))
	articleDir := filepath.Join(p.outputDir, dirName)

	for _, dir := range []string{articleDir, filepath.Join(articleDir, "reels"), filepath.Join(articleDir, "logs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return articleDir, nil
}

func (p *Pipeline) saveArtifact(path, content string) {
	if content == "" {
		p.logger.Error("no content to save", "path", path)
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		p.logger.Error("cannot save content", "path", path, "error", err)
		return
	}
	p.logger.Info("content saved", "path", path)
}

func (p *Pipeline) saveArticleInfo(articleDir string, article domain.SourceArticle) {
	raw, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		p.logger.Error("cannot serialize article info", "error", err)
		return
	}
	path := filepath.Join(articleDir, "article_info.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		p.logger.Error("cannot save article info", "path", path, "error", err)
	}
}

// SanitizeTitle makes a title safe for use as a directory or file name:
// letters, digits, spaces, hyphens and underscores pass through, every
// other rune becomes an underscore, and the result is capped at 50
// runes.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	runes := []rune(b.String())
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes)
}
