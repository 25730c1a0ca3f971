// Package ledger tracks which source articles have already produced
// content, keeping pipeline runs idempotent.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"StartupContent/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Ledger is an append-only dedup record persisted as a JSON list. An
// article counts as processed when its URL or its title matches any
// stored entry (exact, case-sensitive). Persistence failures are logged
// and swallowed: the in-memory state stays correct for the current
// process, and losing it only risks reprocessing.
type Ledger struct {
	path    string
	entries []domain.LedgerEntry
	logger  *slog.Logger
	now     func() time.Time
}

// New loads the ledger at path, creating an empty file when absent.
func New(path string, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{path: path, logger: logger, now: time.Now}
	l.load()
	return l
}

func (l *Ledger) load() {
	raw, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		l.entries = nil
		l.persist()
		return
	}
	if err != nil {
		l.logger.Error("cannot load article ledger", "path", l.path, "error", err)
		l.entries = nil
		return
	}

	var entries []domain.LedgerEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		l.logger.Error("cannot parse article ledger", "path", l.path, "error", err)
		l.entries = nil
		return
	}
	l.entries = entries
}

func (l *Ledger) persist() {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			l.logger.Error("cannot create ledger dir", "path", dir, "error", err)
			return
		}
	}

	raw, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		l.logger.Error("cannot serialize article ledger", "error", err)
		return
	}
	if l.entries == nil {
		raw = []byte("[]")
	}

	if err := os.WriteFile(l.path, raw, 0o644); err != nil {
		l.logger.Error("cannot save article ledger", "path", l.path, "error", err)
		return
	}
	l.logger.Debug("article ledger saved", "path", l.path, "entries", len(l.entries))
}

// IsProcessed reports whether the article's URL or title matches any
// ledger entry.
func (l *Ledger) IsProcessed(article domain.SourceArticle) bool {
	for _, entry := range l.entries {
		if entry.URL == article.Link || entry.Title == article.Title {
			return true
		}
	}
	return false
}

// MarkProcessed appends one entry and persists the whole ledger. No
// uniqueness check is made; duplicate entries are harmless for lookup.
func (l *Ledger) MarkProcessed(article domain.SourceArticle, outputPath string) {
	l.entries = append(l.entries, domain.LedgerEntry{
		URL:           article.Link,
		Title:         article.Title,
		DateProcessed: l.now().Format(timeLayout),
		OutputPath:    outputPath,
	})
	l.persist()
	l.logger.Info("article marked as processed", "title", article.Title)
}

// Reset removes the first entry whose title matches exactly and reports
// whether a match was found. Used for manual re-processing.
func (l *Ledger) Reset(title string) bool {
	for i, entry := range l.entries {
		if entry.Title == title {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.persist()
			l.logger.Info("article processed status reset", "title", title)
			return true
		}
	}
	l.logger.Warn("article not found in ledger", "title", title)
	return false
}

// ResetAll empties the ledger after writing a timestamped backup of the
// prior contents next to the ledger file.
func (l *Ledger) ResetAll() error {
	backupPath := fmt.Sprintf("%s.backup.%s", l.path, l.now().Format("20060102-150405"))
	raw, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize ledger backup: %w", err)
	}
	if err := os.WriteFile(backupPath, raw, 0o644); err != nil {
		return fmt.Errorf("write ledger backup: %w", err)
	}

	count := len(l.entries)
	l.entries = nil
	l.persist()
	l.logger.Info("article ledger reset", "entries", count, "backup", backupPath)
	return nil
}

// Entries returns a snapshot of all ledger entries.
func (l *Ledger) Entries() []domain.LedgerEntry {
	return append([]domain.LedgerEntry(nil), l.entries...)
}
