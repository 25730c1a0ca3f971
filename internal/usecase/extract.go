package usecase

import (
	"strings"
	"unicode"

	"StartupContent/internal/domain"
)

var (
	fundingVerbs = map[string]bool{
		"raises": true, "secures": true, "gets": true,
		"receives": true, "announces": true, "launches": true,
	}

	companyStopwords = map[string]bool{
		"the": true, "a": true, "an": true, "in": true, "on": true,
		"at": true, "by": true, "for": true, "with": true, "to": true,
		"saudi": true, "dubai": true, "egypt": true, "uae": true,
		"fintech": true, "startup": true,
	}

	locationKeywords = []string{
		"dubai", "saudi", "egypt", "uae", "qatar",
		"bahrain", "kuwait", "oman", "jordan", "lebanon",
	}

	industryKeywords = []string{
		"fintech", "healthtech", "edtech", "proptech",
		"ecommerce", "saas", "ai", "blockchain",
	}
)

// ExtractKeyInfo pulls the facts the generators need out of a raw
// article: company name, funding amount, location, industry and a short
// summary. All of it is heuristic; empty fields are expected and the
// generators handle them.
func ExtractKeyInfo(article domain.SourceArticle) domain.ArticleInfo {
	info := domain.ArticleInfo{
		Title:         article.Title,
		CompanyName:   extractCompanyName(article),
		FundingAmount: extractFundingAmount(article.Title),
		Location:      extractLocation(article.Title),
		Industry:      extractIndustry(article),
	}

	if len(article.Content) > 0 {
		head := article.Content
		if len(head) > 3 {
			head = head[:3]
		}
		info.ContentSummary = strings.Join(head, "\n")
	}

	return info
}

// extractCompanyName tries four heuristics in order: a capitalized word
// before a comma in the first paragraph, a capitalized word before a
// funding verb in the title, the word after "startup", and finally the
// first capitalized non-stopword in the title.
func extractCompanyName(article domain.SourceArticle) string {
	if len(article.Content) > 0 {
		words := strings.Fields(article.Content[0])
		for i := 1; i < len(words); i++ {
			if strings.HasSuffix(words[i], ",") && startsUpper(words[i-1]) {
				return words[i-1]
			}
		}
	}

	titleWords := strings.Fields(article.Title)
	for i := 0; i < len(titleWords)-1; i++ {
		if startsUpper(titleWords[i]) && fundingVerbs[strings.ToLower(titleWords[i+1])] {
			return cleanCompanyWord(titleWords[i])
		}
	}

	lower := strings.ToLower(article.Title)
	if idx := strings.Index(lower, "startup"); idx >= 0 {
		after := strings.Fields(article.Title[idx:])
		if len(after) > 1 && startsUpper(after[1]) {
			return cleanCompanyWord(after[1])
		}
	}

	for _, word := range titleWords {
		if startsUpper(word) && !companyStopwords[strings.ToLower(word)] {
			return cleanCompanyWord(word)
		}
	}

	return ""
}

// extractFundingAmount finds "$X million" style amounts in the title.
func extractFundingAmount(title string) string {
	lower := strings.ToLower(title)
	if !strings.Contains(lower, "million") && !strings.Contains(title, "$") {
		return ""
	}

	words := strings.Fields(title)
	for i := 1; i < len(words); i++ {
		if strings.ToLower(words[i]) == "million" {
			amount := words[i-1]
			if strings.HasPrefix(amount, "$") {
				return amount + " million"
			}
			return "$" + amount + " million"
		}
	}
	return ""
}

func extractLocation(title string) string {
	for _, word := range strings.Fields(title) {
		for _, loc := range locationKeywords {
			if strings.ToLower(word) == loc {
				return word
			}
		}
	}
	return ""
}

func extractIndustry(article domain.SourceArticle) string {
	haystack := strings.ToLower(article.Title)
	head := article.Content
	if len(head) > 3 {
		head = head[:3]
	}
	for _, p := range head {
		haystack += " " + strings.ToLower(p)
	}

	for _, keyword := range industryKeywords {
		if strings.Contains(haystack, keyword) {
			return keyword
		}
	}
	return "технологический сектор"
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func cleanCompanyWord(word string) string {
	word = strings.TrimSuffix(word, "'s")
	return strings.Trim(word, ",.")
}
