package usecase

import (
	"testing"

	"StartupContent/internal/domain"
)

func TestExtractCompanyNameFromFirstParagraph(t *testing.T) {
	t.Parallel()

	article := domain.SourceArticle{
		Title:   "Funding news of the week",
		Content: []string{"Fresh capital went to Acme Technologies, a payments company from Cairo."},
	}
	info := ExtractKeyInfo(article)
	if info.CompanyName != "Acme" {
		t.Fatalf("CompanyName = %q, want Acme", info.CompanyName)
	}
}

func TestExtractCompanyNameFromFundingVerb(t *testing.T) {
	t.Parallel()

	article := domain.SourceArticle{Title: "Tabby raises $50 million in Series C"}
	info := ExtractKeyInfo(article)
	if info.CompanyName != "Tabby" {
		t.Fatalf("CompanyName = %q, want Tabby", info.CompanyName)
	}
}

func TestExtractCompanyNameAfterStartupWord(t *testing.T) {
	t.Parallel()

	article := domain.SourceArticle{Title: "Egyptian fintech startup Khazna expands its wallet"}
	info := ExtractKeyInfo(article)
	if info.CompanyName != "Khazna" {
		t.Fatalf("CompanyName = %q, want Khazna", info.CompanyName)
	}
}

func TestExtractCompanyNameSkipsStopwords(t *testing.T) {
	t.Parallel()

	article := domain.SourceArticle{Title: "The Saudi company Foodics grows"}
	info := ExtractKeyInfo(article)
	if info.CompanyName != "Foodics" {
		t.Fatalf("CompanyName = %q, want Foodics", info.CompanyName)
	}
}

func TestExtractFundingAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Tabby raises $50 million in Series C", "$50 million"},
		{"Acme secures 7 million investment", "$7 million"},
		{"Acme launches a new product", ""},
	}
	for _, tc := range cases {
		got := ExtractKeyInfo(domain.SourceArticle{Title: tc.title}).FundingAmount
		if got != tc.want {
			t.Errorf("FundingAmount(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestExtractLocationAndIndustry(t *testing.T) {
	t.Parallel()

	article := domain.SourceArticle{
		Title:   "Dubai fintech startup Sarwa raises $15 million",
		Content: []string{"Sarwa, an investment platform, announced the round."},
	}
	info := ExtractKeyInfo(article)
	if info.Location != "Dubai" {
		t.Fatalf("Location = %q, want Dubai", info.Location)
	}
	if info.Industry != "fintech" {
		t.Fatalf("Industry = %q, want fintech", info.Industry)
	}

	generic := ExtractKeyInfo(domain.SourceArticle{Title: "Acme raises $5 million"})
	if generic.Industry != "технологический сектор" {
		t.Fatalf("generic Industry = %q", generic.Industry)
	}
}

func TestExtractContentSummaryTakesThreeParagraphs(t *testing.T) {
	t.Parallel()

	article := domain.SourceArticle{
		Title:   "Acme raises $5 million",
		Content: []string{"p1", "p2", "p3", "p4"},
	}
	info := ExtractKeyInfo(article)
	if info.ContentSummary != "p1\np2\np3" {
		t.Fatalf("ContentSummary = %q", info.ContentSummary)
	}

	empty := ExtractKeyInfo(domain.SourceArticle{Title: "Acme raises $5 million"})
	if empty.ContentSummary != "" {
		t.Fatalf("empty ContentSummary = %q", empty.ContentSummary)
	}
}

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	got := SanitizeTitle("Acme raises $5M: what's next?")
	if got != "Acme raises _5M_ what_s next_" {
		t.Fatalf("SanitizeTitle = %q", got)
	}

	long := SanitizeTitle("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if len([]rune(long)) != 50 {
		t.Fatalf("sanitized length = %d, want 50", len([]rune(long)))
	}
}
