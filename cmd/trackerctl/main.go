// Command trackerctl is the maintenance companion of contentcreator: it
// inspects and repairs the content tracker and the processed-articles
// ledger.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"StartupContent/internal/app"
	"StartupContent/internal/config"
	"StartupContent/internal/domain"
	"StartupContent/internal/ledger"
	"StartupContent/internal/logging"
	"StartupContent/internal/ports"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "view":
		err = runView(ctx, cfg)
	case "reset-article":
		if len(os.Args) < 3 {
			err = fmt.Errorf("usage: trackerctl reset-article <title>")
			break
		}
		l := ledger.New(cfg.Ledger.Path, logger)
		if !l.Reset(os.Args[2]) {
			err = fmt.Errorf("article %q not found in ledger", os.Args[2])
		}
	case "reset-all":
		err = ledger.New(cfg.Ledger.Path, logger).ResetAll()
	case "setup-sheets":
		err = runSetupSheets(ctx, cfg)
	case "test-post":
		err = runTestPost(ctx, cfg)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: trackerctl <command> [args]

commands:
  view                  print tracker contents
  reset-article <title> allow one article to be processed again
  reset-all             clear the processed-articles ledger (with backup)
  setup-sheets          create the Google Sheets table structure
  test-post             write a demo article with posts, reel and schedule`)
}

func newTracker(ctx context.Context, cfg config.Config) (ports.TabularStore, error) {
	logger := logging.New(cfg.Logging.Level)
	tracker, err := app.NewTracker(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := tracker.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return tracker, nil
}

func runView(ctx context.Context, cfg config.Config) error {
	tracker, err := newTracker(ctx, cfg)
	if err != nil {
		return err
	}

	articles, err := tracker.GetAllArticles(ctx)
	if err != nil {
		return fmt.Errorf("load articles: %w", err)
	}
	fmt.Printf("Articles: %d\n", len(articles))
	for _, a := range articles {
		fmt.Printf("  %s  %-10s  %s\n", a.ID, a.ProcessingStatus, a.Title)
	}

	contentRows, err := tracker.GetAllContent(ctx)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	fmt.Printf("Content: %d\n", len(contentRows))
	for _, c := range contentRows {
		fmt.Printf("  %s  %-2s %-13s %-9s  %s\n", c.ID, c.Language, c.ContentType, c.Status, c.Title)
	}
	return nil
}

func runSetupSheets(ctx context.Context, cfg config.Config) error {
	cfg.Storage.Backend = config.StorageBackendSheets
	if _, err := newTracker(ctx, cfg); err != nil {
		return err
	}
	fmt.Println("Google Sheets structure is ready")
	return nil
}

// runTestPost seeds the tracker with one complete demo record set and
// exercises scheduling and export on it.
func runTestPost(ctx context.Context, cfg config.Config) error {
	tracker, err := newTracker(ctx, cfg)
	if err != nil {
		return err
	}

	article := domain.SourceArticle{
		Title:    "Тестовая статья о стартапе",
		Link:     "https://example.com/test-article",
		Category: "Fintech",
		Date:     time.Now().Format("2006-01-02"),
		Content: []string{
			"TestStartup, инновационный финтех-стартап, привлек $5 миллионов в раунде финансирования серии А.",
			"Основанный в 2023 году, TestStartup разрабатывает платформу для цифровых платежей.",
			"Компания планирует использовать привлеченные средства для расширения команды.",
		},
	}
	info := domain.ArticleInfo{
		Title:          article.Title,
		CompanyName:    "TestStartup",
		FundingAmount:  "$5 million",
		Industry:       "fintech",
		ContentSummary: article.Content[0],
	}

	articleID, err := tracker.AddArticle(ctx, article, info)
	if err != nil {
		return fmt.Errorf("add article: %w", err)
	}
	fmt.Printf("Article added: %s\n", articleID)

	russianID, err := tracker.AddContent(ctx, domain.ContentDraft{
		Title:       article.Title,
		SourceURL:   article.Link,
		Category:    article.Category,
		ContentType: domain.ContentTelegramPost,
		Language:    domain.LanguageRussian,
		Platform:    "Telegram",
		Tags:        "#стартапы #инновации #технологии #евгенийдубский #эрартаэйай",
		Rating:      "3/5",
		Notes:       "Тестовый пост на русском языке",
	}, articleID, "🚀 Прорыв в мире финтех! TestStartup привлек $5 миллионов.")
	if err != nil {
		return fmt.Errorf("add russian content: %w", err)
	}
	fmt.Printf("Russian post added: %s\n", russianID)

	englishID, err := tracker.AddContent(ctx, domain.ContentDraft{
		Title:       article.Title,
		SourceURL:   article.Link,
		Category:    article.Category,
		ContentType: domain.ContentLinkedInPost,
		Language:    domain.LanguageEnglish,
		Platform:    "LinkedIn",
		Tags:        "#analytics #businesscases #startupexperience #evgeniydubskiy #erartaai",
		Rating:      "3/5",
		Notes:       "Тестовый пост на английском языке",
	}, articleID, "⚡️ Entrepreneurial energy in action! TestStartup raised $5 million.")
	if err != nil {
		return fmt.Errorf("add english content: %w", err)
	}
	fmt.Printf("English post added: %s\n", englishID)

	reelID, err := tracker.AddReel(ctx, articleID, "TestStartup привлекает $5 миллионов",
		"HOOK: Финтех-революция: $5 млн инвестиций", "Тестовый скрипт")
	if err != nil {
		return fmt.Errorf("add reel: %w", err)
	}
	fmt.Printf("Reel script added: %s\n", reelID)

	scheduleID, err := tracker.ScheduleContent(ctx, russianID, domain.ScheduleRequest{
		Platform: "Telegram",
		Date:     time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:     "10:00",
		Timezone: "UTC+3",
		Priority: "high",
		Account:  "@evgeniydubskiy",
	})
	if err != nil {
		return fmt.Errorf("schedule content: %w", err)
	}
	fmt.Printf("Russian post scheduled: %s\n", scheduleID)

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for contentID, name := range map[string]string{
		russianID: "exported_russian_post.md",
		englishID: "exported_english_post.md",
	} {
		path := filepath.Join(cfg.Output.Dir, name)
		if err := tracker.ExportContentToFile(ctx, contentID, path); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
		fmt.Printf("Exported: %s\n", path)
	}

	return nil
}
