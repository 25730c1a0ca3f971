// Package selector picks the most promising article from a daily batch
// using a cheap keyword and length heuristic.
package selector

import (
	"log/slog"
	"sort"
	"strings"

	"StartupContent/internal/domain"
	"StartupContent/internal/ledger"
)

// Keywords that signal a substantive startup story. Each keyword found
// in the lowercased title adds one point.
var keywords = []string{
	"million",
	"funding",
	"investment",
	"launch",
	"startup",
	"innovation",
	"technology",
}

// Selector scores candidate articles and returns the best unprocessed
// one. Scoring is deterministic, so reruns over the same batch pick the
// same article.
type Selector struct {
	ledger *ledger.Ledger
	logger *slog.Logger
}

func New(l *ledger.Ledger, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{ledger: l, logger: logger}
}

// Score computes the heuristic score for a single article: a bucket for
// body length plus one point per matched keyword.
func Score(article domain.SourceArticle) int {
	length := article.ContentLength()
	score := 1
	switch {
	case length > 2000:
		score = 3
	case length > 1000:
		score = 2
	}

	title := strings.ToLower(article.Title)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			score++
		}
	}
	return score
}

// SelectBest returns the highest-scoring article with content that the
// ledger has not seen yet, or nil when no candidate qualifies. Ties keep
// input order.
func (s *Selector) SelectBest(articles []domain.SourceArticle) *domain.SourceArticle {
	type scored struct {
		article domain.SourceArticle
		score   int
	}

	var candidates []scored
	for _, a := range articles {
		if !a.HasContent() {
			continue
		}
		if s.ledger != nil && s.ledger.IsProcessed(a) {
			s.logger.Debug("skipping already processed article", "title", a.Title)
			continue
		}
		candidates = append(candidates, scored{article: a, score: Score(a)})
	}

	if len(candidates) == 0 {
		s.logger.Warn("no unprocessed articles with content in batch", "total", len(articles))
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	best := candidates[0]
	s.logger.Info("selected article",
		"title", best.article.Title,
		"score", best.score,
		"candidates", len(candidates))
	return &best.article
}
