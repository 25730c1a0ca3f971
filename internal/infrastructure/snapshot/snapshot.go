// Package snapshot persists the day's scraped articles as JSON files so
// reruns and other tools can work from the same batch.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"StartupContent/internal/domain"
	"StartupContent/internal/ports"
)

// Store keeps one articles_<date>.json file per day under dir.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Path returns the snapshot file for the given day.
func (s *Store) Path(day time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("articles_%s.json", day.Format("2006-01-02")))
}

// Save merges articles into the day's snapshot, keyed by link. Existing
// entries win: a rerun never overwrites an article already captured.
func (s *Store) Save(day time.Time, articles []domain.SourceArticle) error {
	if len(articles) == 0 {
		s.logger.Info("no articles to snapshot", "day", day.Format("2006-01-02"))
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	path := s.Path(day)
	existing, err := readSnapshot(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[a.Link] = struct{}{}
	}

	added := 0
	for _, a := range articles {
		if _, ok := seen[a.Link]; ok {
			continue
		}
		seen[a.Link] = struct{}{}
		existing = append(existing, a)
		added++
	}

	if added == 0 && len(existing) > 0 {
		s.logger.Info("no new articles for snapshot", "path", path)
		return nil
	}

	raw, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	s.logger.Info("snapshot saved", "path", path, "added", added, "total", len(existing))
	return nil
}

// Load returns the day's snapshot, or nil when no snapshot exists.
func (s *Store) Load(day time.Time) ([]domain.SourceArticle, error) {
	articles, err := readSnapshot(s.Path(day))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return articles, err
}

func readSnapshot(path string) ([]domain.SourceArticle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var articles []domain.SourceArticle
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return articles, nil
}

// FileSource serves articles from a fixed snapshot file regardless of
// the requested day. Used to drive the pipeline from a prepared batch.
type FileSource struct {
	path string
}

var _ ports.ArticleSource = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchDaily reads the whole file; the day argument is ignored.
func (f *FileSource) FetchDaily(_ context.Context, _ time.Time) ([]domain.SourceArticle, error) {
	articles, err := readSnapshot(f.path)
	if err != nil {
		return nil, fmt.Errorf("read article file: %w", err)
	}
	return articles, nil
}
