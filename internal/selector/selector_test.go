package selector

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"StartupContent/internal/domain"
	"StartupContent/internal/ledger"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	return ledger.New(filepath.Join(t.TempDir(), "processed.json"), testLogger())
}

func longBody(words int) []string {
	return []string{strings.Repeat("word ", words)}
}

func TestScoreLengthBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body []string
		want int
	}{
		{"short", longBody(50), 1},
		{"medium", longBody(250), 2},
		{"long", longBody(500), 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := domain.SourceArticle{Title: "no signal words here", Content: tc.body}
			if got := Score(a); got != tc.want {
				t.Fatalf("Score(%s) = %d, want %d (length %d)", tc.name, got, tc.want, a.ContentLength())
			}
		})
	}
}

func TestScoreKeywords(t *testing.T) {
	t.Parallel()

	a := domain.SourceArticle{
		Title:   "Startup secures Funding for Technology push",
		Content: []string{"The company raised a new round."},
	}
	// base 1 + startup + funding + technology.
	if got := Score(a); got != 4 {
		t.Fatalf("Score = %d, want 4", got)
	}

	// A repeated keyword counts once.
	b := domain.SourceArticle{Title: "million million million", Content: []string{"million"}}
	if got := Score(b); got != 2 {
		t.Fatalf("Score with repeated keyword = %d, want 2", got)
	}
}

func TestScoreIgnoresBodyKeywords(t *testing.T) {
	t.Parallel()

	a := domain.SourceArticle{
		Title:   "Acme raises $10 million",
		Content: []string{"Acme, a fintech startup, raised a new round."},
	}
	// base 1 + "million" in the title; "startup" in the body adds nothing.
	if got := Score(a); got != 2 {
		t.Fatalf("Score = %d, want 2", got)
	}
}

func TestSelectBestPrefersHigherScore(t *testing.T) {
	t.Parallel()

	weak := domain.SourceArticle{
		Title:   "Company hires new CFO",
		Link:    "https://example.com/weak",
		Content: longBody(50),
	}
	strong := domain.SourceArticle{
		Title:   "Startup raises $20 million funding round",
		Link:    "https://example.com/strong",
		Content: longBody(500),
	}

	s := New(testLedger(t), testLogger())
	got := s.SelectBest([]domain.SourceArticle{weak, strong})
	if got == nil || got.Link != strong.Link {
		t.Fatalf("SelectBest picked %+v, want %q", got, strong.Link)
	}
}

func TestSelectBestSkipsProcessedAndEmpty(t *testing.T) {
	t.Parallel()

	l := testLedger(t)
	processed := domain.SourceArticle{
		Title:   "Already done startup funding",
		Link:    "https://example.com/done",
		Content: longBody(500),
	}
	l.MarkProcessed(processed, "")

	empty := domain.SourceArticle{Title: "Startup with no body", Link: "https://example.com/empty"}
	fresh := domain.SourceArticle{
		Title:   "New launch announcement",
		Link:    "https://example.com/fresh",
		Content: longBody(50),
	}

	s := New(l, testLogger())
	got := s.SelectBest([]domain.SourceArticle{processed, empty, fresh})
	if got == nil || got.Link != fresh.Link {
		t.Fatalf("SelectBest picked %+v, want %q", got, fresh.Link)
	}
}

func TestSelectBestReturnsNilWhenNothingQualifies(t *testing.T) {
	t.Parallel()

	s := New(testLedger(t), testLogger())
	if got := s.SelectBest(nil); got != nil {
		t.Fatalf("SelectBest(nil) = %+v, want nil", got)
	}
	if got := s.SelectBest([]domain.SourceArticle{{Title: "empty"}}); got != nil {
		t.Fatalf("SelectBest(empty content) = %+v, want nil", got)
	}
}

func TestSelectBestTieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	first := domain.SourceArticle{Title: "alpha", Link: "https://example.com/a", Content: longBody(50)}
	second := domain.SourceArticle{Title: "beta", Link: "https://example.com/b", Content: longBody(50)}

	s := New(testLedger(t), testLogger())
	got := s.SelectBest([]domain.SourceArticle{first, second})
	if got == nil || got.Link != first.Link {
		t.Fatalf("tie broke input order, picked %+v", got)
	}
}
