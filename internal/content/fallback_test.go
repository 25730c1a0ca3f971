package content

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"testing"

	"StartupContent/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testInfo() domain.ArticleInfo {
	return domain.ArticleInfo{
		Title:          "Acme raises $30 million Series B",
		CompanyName:    "Acme",
		FundingAmount:  "$30 million",
		Industry:       "fintech",
		ContentSummary: "Acme announced a $30 million Series B round led by Example Capital.",
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	got := fill("{company} just {action}!", map[string]string{"company": "Acme", "action": "launched"})
	if got != "Acme just launched!" {
		t.Fatalf("fill = %q", got)
	}
	// Unknown markers stay in place for renderSafe to detect.
	got = fill("{company} {unknown}", map[string]string{"company": "Acme"})
	if got != "Acme {unknown}" {
		t.Fatalf("fill with unknown key = %q", got)
	}
}

func TestRenderSafeFallsBack(t *testing.T) {
	t.Parallel()

	args := map[string]string{"company": "Acme"}
	got := renderSafe("{company} did {mystery_thing}", "plain {company}", args, testLogger())
	if got != "plain Acme" {
		t.Fatalf("renderSafe = %q", got)
	}
}

func TestGeneratePostRussian(t *testing.T) {
	t.Parallel()

	f := NewFallback(rand.NewSource(1), testLogger())
	post, err := f.GeneratePost(context.Background(), testInfo(), domain.LanguageRussian)
	if err != nil {
		t.Fatalf("GeneratePost: %v", err)
	}

	for _, want := range []string{
		"Acme",
		"**Acme raises $30 million Series B**",
		"Рейтинг Дубского",
		"(4/5)",
		"t.me/evgeniydubskiy",
		"#erartaai",
	} {
		if !strings.Contains(post, want) {
			t.Errorf("Russian post missing %q:\n%s", want, post)
		}
	}
	if strings.Contains(post, "{") {
		t.Fatalf("unresolved placeholder in post:\n%s", post)
	}
}

func TestGeneratePostEnglish(t *testing.T) {
	t.Parallel()

	f := NewFallback(rand.NewSource(2), testLogger())
	post, err := f.GeneratePost(context.Background(), testInfo(), domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("GeneratePost: %v", err)
	}

	for _, want := range []string{
		"raised $30 million",
		"Dubskiy Rating",
		"instagram.com/erarta.ai",
		"#evgeniydubskiy",
	} {
		if !strings.Contains(post, want) {
			t.Errorf("English post missing %q:\n%s", want, post)
		}
	}
	if strings.Contains(post, "{") {
		t.Fatalf("unresolved placeholder in post:\n%s", post)
	}
}

func TestGeneratePostWithoutCompanyOrFunding(t *testing.T) {
	t.Parallel()

	f := NewFallback(rand.NewSource(3), testLogger())
	info := domain.ArticleInfo{Title: "A quiet launch", ContentSummary: "short"}

	ru, err := f.GeneratePost(context.Background(), info, domain.LanguageRussian)
	if err != nil {
		t.Fatalf("GeneratePost ru: %v", err)
	}
	if !strings.Contains(ru, "развивается") {
		t.Errorf("default Russian action missing:\n%s", ru)
	}

	en, err := f.GeneratePost(context.Background(), info, domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("GeneratePost en: %v", err)
	}
	if !strings.Contains(en, "is developing") {
		t.Errorf("default English action missing:\n%s", en)
	}
}

func TestGenerateReelScript(t *testing.T) {
	t.Parallel()

	f := NewFallback(rand.NewSource(4), testLogger())
	script, err := f.GenerateReelScript(context.Background(), testInfo())
	if err != nil {
		t.Fatalf("GenerateReelScript: %v", err)
	}

	for _, want := range []string{
		"HOOK:",
		"ОСНОВНАЯ ЧАСТЬ:",
		"РЕЙТИНГ ДУБСКОГО: 🚀🚀🚀🚀 (4/5)",
		"ЗАКЛЮЧЕНИЕ:",
		"ВИЗУАЛЬНЫЕ ИДЕИ:",
		"ХЭШТЕГИ:",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("reel script missing %q:\n%s", want, script)
		}
	}
	if strings.Contains(script, "{") {
		t.Fatalf("unresolved placeholder in script:\n%s", script)
	}
}

func TestPickReelTemplateSkipsMetricHooks(t *testing.T) {
	t.Parallel()

	f := NewFallback(rand.NewSource(5), testLogger())
	for i := 0; i < 100; i++ {
		tmpl := f.pickReelTemplate()
		if strings.Contains(tmpl.Hook, "metric") {
			t.Fatalf("picked hook requiring a metric value: %q", tmpl.Hook)
		}
	}
}

func TestDeterministicWithFixedSeed(t *testing.T) {
	t.Parallel()

	a := NewFallback(rand.NewSource(7), testLogger())
	b := NewFallback(rand.NewSource(7), testLogger())

	pa, _ := a.GeneratePost(context.Background(), testInfo(), domain.LanguageRussian)
	pb, _ := b.GeneratePost(context.Background(), testInfo(), domain.LanguageRussian)
	if pa != pb {
		t.Fatalf("same seed produced different posts")
	}
}
