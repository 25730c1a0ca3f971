package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"StartupContent/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// runForBackends executes the same contract test against the in-memory
// and the Excel backend, so both stay behaviorally identical.
func runForBackends(t *testing.T, test func(t *testing.T, s *Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		t.Parallel()
		test(t, NewMemoryStore(testLogger()))
	})

	t.Run("excel", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "content_tracker.xlsx")
		s, err := NewExcelStore(path, testLogger())
		if err != nil {
			t.Fatalf("NewExcelStore: %v", err)
		}
		test(t, s)
	})
}

func testArticle() domain.SourceArticle {
	return domain.SourceArticle{
		Title:    "Tabby raises $50 million",
		Link:     "https://example.com/tabby",
		Category: "Funding",
		Date:     "2024-05-14",
		Content:  []string{"Paragraph one.", "Paragraph two."},
	}
}

func testInfo() domain.ArticleInfo {
	return domain.ArticleInfo{
		Title:         "Tabby raises $50 million",
		CompanyName:   "Tabby",
		FundingAmount: "$50 million",
	}
}

func testDraft() domain.ContentDraft {
	return domain.ContentDraft{
		Title:       "Tabby raises $50 million",
		SourceURL:   "https://example.com/tabby",
		Category:    "Funding",
		ContentType: domain.ContentTelegramPost,
		Language:    domain.LanguageRussian,
		Platform:    "Telegram",
		Tags:        "#стартапы",
		Rating:      "4/5",
		Notes:       "note",
	}
}

func TestAddArticleAndLookup(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		id, err := s.AddArticle(ctx, testArticle(), testInfo())
		if err != nil {
			t.Fatalf("AddArticle: %v", err)
		}
		if id == "" {
			t.Fatalf("empty article id")
		}

		got, err := s.GetArticleByID(ctx, id)
		if err != nil {
			t.Fatalf("GetArticleByID: %v", err)
		}
		if got == nil {
			t.Fatalf("article not found after insert")
		}
		if got.Title != "Tabby raises $50 million" || got.SourceURL != "https://example.com/tabby" {
			t.Fatalf("unexpected article row: %+v", got)
		}
		if got.CompanyName != "Tabby" || got.FundingAmount != "$50 million" {
			t.Fatalf("key info not stored: %+v", got)
		}
		if got.ProcessingStatus != "processed" {
			t.Fatalf("processing status = %q, want processed", got.ProcessingStatus)
		}
		if !strings.Contains(got.Content, "Paragraph one.") {
			t.Fatalf("body not stored: %q", got.Content)
		}

		logs, err := s.GetLogsByArticleID(ctx, id)
		if err != nil {
			t.Fatalf("GetLogsByArticleID: %v", err)
		}
		if len(logs) != 1 || logs[0].LogType != "article_added" {
			t.Fatalf("expected one article_added log, got %+v", logs)
		}
	})
}

func TestLookupsReturnNilWhenAbsent(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		article, err := s.GetArticleByID(ctx, "missing")
		if err != nil || article != nil {
			t.Fatalf("GetArticleByID(missing) = %v, %v; want nil, nil", article, err)
		}
		content, err := s.GetContentByID(ctx, "missing")
		if err != nil || content != nil {
			t.Fatalf("GetContentByID(missing) = %v, %v; want nil, nil", content, err)
		}
		reels, err := s.GetReelsByArticleID(ctx, "missing")
		if err != nil || len(reels) != 0 {
			t.Fatalf("GetReelsByArticleID(missing) = %v, %v", reels, err)
		}
	})
}

func TestAddContent(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		articleID, err := s.AddArticle(ctx, testArticle(), testInfo())
		if err != nil {
			t.Fatalf("AddArticle: %v", err)
		}

		contentID, err := s.AddContent(ctx, testDraft(), articleID, "пост для Telegram")
		if err != nil {
			t.Fatalf("AddContent: %v", err)
		}

		got, err := s.GetContentByID(ctx, contentID)
		if err != nil {
			t.Fatalf("GetContentByID: %v", err)
		}
		if got == nil {
			t.Fatalf("content not found after insert")
		}
		if got.ArticleID != articleID {
			t.Fatalf("ArticleID = %q, want %q", got.ArticleID, articleID)
		}
		if got.Body != "пост для Telegram" {
			t.Fatalf("Body = %q", got.Body)
		}
		if got.Status != domain.ContentStatusDraft {
			t.Fatalf("Status = %q, want draft", got.Status)
		}
		if got.ContentType != "telegram_post" || got.Language != "ru" {
			t.Fatalf("type/language = %q/%q", got.ContentType, got.Language)
		}
	})
}

func TestAddContentReadsBodyFromFile(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		path := filepath.Join(t.TempDir(), "post.md")
		if err := os.WriteFile(path, []byte("body from file"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		draft := testDraft()
		draft.ContentPath = path
		contentID, err := s.AddContent(ctx, draft, "article-1", "")
		if err != nil {
			t.Fatalf("AddContent: %v", err)
		}

		got, err := s.GetContentByID(ctx, contentID)
		if err != nil || got == nil {
			t.Fatalf("GetContentByID: %v, %v", got, err)
		}
		if got.Body != "body from file" {
			t.Fatalf("Body = %q", got.Body)
		}
	})
}

func TestScheduleContentUpdatesBothTables(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		articleID, err := s.AddArticle(ctx, testArticle(), testInfo())
		if err != nil {
			t.Fatalf("AddArticle: %v", err)
		}
		contentID, err := s.AddContent(ctx, testDraft(), articleID, "пост")
		if err != nil {
			t.Fatalf("AddContent: %v", err)
		}

		scheduleID, err := s.ScheduleContent(ctx, contentID, domain.ScheduleRequest{
			Platform: "Telegram",
			Date:     "2024-05-15",
			Time:     "10:00",
			Priority: "high",
			Account:  "@evgeniydubskiy",
		})
		if err != nil {
			t.Fatalf("ScheduleContent: %v", err)
		}

		schedules, err := s.GetSchedulesByContentID(ctx, contentID)
		if err != nil {
			t.Fatalf("GetSchedulesByContentID: %v", err)
		}
		if len(schedules) != 1 {
			t.Fatalf("schedules = %d, want 1", len(schedules))
		}
		want := domain.ScheduleRow{
			ID:            scheduleID,
			ContentID:     contentID,
			Platform:      "Telegram",
			ScheduledDate: "2024-05-15",
			ScheduledTime: "10:00",
			Timezone:      "UTC+3",
			PostingStatus: domain.PostingPending,
			Priority:      "high",
			Account:       "@evgeniydubskiy",
		}
		if diff := cmp.Diff(want, schedules[0]); diff != "" {
			t.Fatalf("schedule row mismatch (-want +got):\n%s", diff)
		}

		content, err := s.GetContentByID(ctx, contentID)
		if err != nil || content == nil {
			t.Fatalf("GetContentByID: %v, %v", content, err)
		}
		if content.Status != domain.ContentStatusScheduled {
			t.Fatalf("content status = %q, want scheduled", content.Status)
		}
		if content.ScheduledDate != "2024-05-15" || content.ScheduledTime != "10:00" {
			t.Fatalf("content schedule fields = %q %q", content.ScheduledDate, content.ScheduledTime)
		}
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		dir := t.TempDir()

		contentID, err := s.AddContent(ctx, testDraft(), "article-1", "original body")
		if err != nil {
			t.Fatalf("AddContent: %v", err)
		}

		exportPath := filepath.Join(dir, "post.md")
		if err := s.ExportContentToFile(ctx, contentID, exportPath); err != nil {
			t.Fatalf("ExportContentToFile: %v", err)
		}
		raw, err := os.ReadFile(exportPath)
		if err != nil {
			t.Fatalf("read export: %v", err)
		}
		if string(raw) != "original body" {
			t.Fatalf("exported = %q", raw)
		}

		editedPath := filepath.Join(dir, "edited.md")
		if err := os.WriteFile(editedPath, []byte("edited body"), 0o644); err != nil {
			t.Fatalf("write edited: %v", err)
		}
		if err := s.ImportContentFromFile(ctx, contentID, editedPath); err != nil {
			t.Fatalf("ImportContentFromFile: %v", err)
		}

		content, err := s.GetContentByID(ctx, contentID)
		if err != nil || content == nil {
			t.Fatalf("GetContentByID: %v, %v", content, err)
		}
		if content.Body != "edited body" {
			t.Fatalf("Body after import = %q", content.Body)
		}

		if err := s.ImportContentFromFile(ctx, "missing", editedPath); err == nil {
			t.Fatalf("expected error importing into missing content")
		}
	})
}

func TestUpdateMetadataUpserts(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		if err := s.UpdateMetadata(ctx, "last_update", "2024-05-14 09:00:00"); err != nil {
			t.Fatalf("UpdateMetadata: %v", err)
		}
		if err := s.UpdateMetadata(ctx, "custom_key", "v1"); err != nil {
			t.Fatalf("UpdateMetadata insert: %v", err)
		}
		if err := s.UpdateMetadata(ctx, "custom_key", "v2"); err != nil {
			t.Fatalf("UpdateMetadata update: %v", err)
		}

		rows, err := s.backend.readRows(ctx, metadataTable)
		if err != nil {
			t.Fatalf("read metadata: %v", err)
		}
		got := map[string]string{}
		for _, row := range rows {
			row = pad(row, metadataTable)
			got[row[0]] = row[1]
		}
		if got["last_update"] != "2024-05-14 09:00:00" {
			t.Fatalf("last_update = %q", got["last_update"])
		}
		if got["custom_key"] != "v2" {
			t.Fatalf("custom_key = %q, want v2 (single updated row)", got["custom_key"])
		}
	})
}

func TestExcelStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "content_tracker.xlsx")

	s, err := NewExcelStore(path, testLogger())
	if err != nil {
		t.Fatalf("NewExcelStore: %v", err)
	}
	id, err := s.AddArticle(ctx, testArticle(), testInfo())
	if err != nil {
		t.Fatalf("AddArticle: %v", err)
	}

	reopened, err := NewExcelStore(path, testLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.GetArticleByID(ctx, id)
	if err != nil {
		t.Fatalf("GetArticleByID: %v", err)
	}
	if got == nil || got.Title != testArticle().Title {
		t.Fatalf("article lost across reopen: %+v", got)
	}
}

func TestAddReelBoundToArticle(t *testing.T) {
	t.Parallel()

	runForBackends(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		articleID, err := s.AddArticle(ctx, testArticle(), testInfo())
		if err != nil {
			t.Fatalf("AddArticle: %v", err)
		}
		reelID, err := s.AddReel(ctx, articleID, "Instagram Reel: Tabby", "HOOK: test", "notes")
		if err != nil {
			t.Fatalf("AddReel: %v", err)
		}

		reels, err := s.GetReelsByArticleID(ctx, articleID)
		if err != nil {
			t.Fatalf("GetReelsByArticleID: %v", err)
		}
		if len(reels) != 1 {
			t.Fatalf("reels = %d, want 1", len(reels))
		}
		if reels[0].ID != reelID || reels[0].Script != "HOOK: test" {
			t.Fatalf("unexpected reel: %+v", reels[0])
		}
		if reels[0].Status != domain.ContentStatusDraft {
			t.Fatalf("reel status = %q", reels[0].Status)
		}
	})
}
