package parser

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"StartupContent/internal/domain"
	"StartupContent/internal/scanner"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Titles and categories matching any of these keywords are treated as
// startup coverage; everything else on a listing page is dropped.
var startupKeywords = []string{
	"startup", "funding", "investment", "seed", "series", "venture", "raised",
	"million", "fintech", "techstars", "accelerator", "incubator", "founder",
	"entrepreneur", "launch", "acquisition", "exit",
}

// MenaBytesScanner crawls MENAbytes-style WordPress listing pages and
// fetches full article bodies for startup-related entries.
type MenaBytesScanner struct {
	client  *http.Client
	baseURL string
}

// NewMenaBytesScanner wires an HTTP client; a nil client gets a default
// with a request timeout.
func NewMenaBytesScanner(client *http.Client) *MenaBytesScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &MenaBytesScanner{client: client, baseURL: "https://www.menabytes.com"}
}

// Name identifies the strategy inside the registry.
func (m *MenaBytesScanner) Name() string {
	return "menabytes"
}

// Scan walks each configured section, collects startup-related cards
// and enriches every card with the full article body. A section fetch
// failure aborts the scan; a detail fetch failure only skips the body.
func (m *MenaBytesScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.SourceArticle, error) {
	if len(req.Sections) == 0 {
		return nil, fmt.Errorf("no sections provided for site %s", req.SiteName)
	}

	if base, ok := req.Options["base_url"]; ok && base != "" {
		m.baseURL = strings.TrimSuffix(base, "/")
	}

	results := make([]domain.SourceArticle, 0)
	seen := map[string]struct{}{}

	for _, section := range req.Sections {
		doc, err := m.fetchDocument(ctx, section.URL)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", section.Name, err)
		}

		for _, article := range m.extractCards(doc) {
			if _, ok := seen[article.Link]; ok {
				continue
			}
			seen[article.Link] = struct{}{}

			if details, err := m.fetchDetails(ctx, article.Link); err == nil {
				article.Content = details.content
				article.ImageURL = details.imageURL
			}
			results = append(results, article)
		}
	}

	return results, nil
}

func (m *MenaBytesScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (m *MenaBytesScanner) extractCards(doc *goquery.Document) []domain.SourceArticle {
	cards := doc.Find("article")
	if cards.Length() == 0 {
		cards = doc.Find(".post")
	}

	var articles []domain.SourceArticle
	cards.Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("h2 a").First()
		if titleLink.Length() == 0 {
			titleLink = card.Find(".entry-title a").First()
		}
		if titleLink.Length() == 0 {
			return
		}

		title := strings.TrimSpace(titleLink.Text())
		href, _ := titleLink.Attr("href")
		if title == "" || href == "" {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = m.baseURL + href
		}

		category := strings.TrimSpace(card.Find(".cat-links a").First().Text())
		if category == "" {
			category = strings.TrimSpace(card.Find(".entry-meta .category").First().Text())
		}
		if category == "" {
			category = "Startup"
		}

		date := strings.TrimSpace(card.Find(".posted-on time").First().Text())
		if date == "" {
			date = strings.TrimSpace(card.Find(".entry-date").First().Text())
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		if !isStartupRelated(title, category) {
			return
		}

		articles = append(articles, domain.SourceArticle{
			Title:    title,
			Link:     href,
			Category: category,
			Date:     date,
		})
	})

	return articles
}

type articleDetails struct {
	content  []string
	imageURL string
}

func (m *MenaBytesScanner) fetchDetails(ctx context.Context, articleURL string) (articleDetails, error) {
	doc, err := m.fetchDocument(ctx, articleURL)
	if err != nil {
		return articleDetails{}, err
	}

	body := doc.Find(".entry-content").First()
	if body.Length() == 0 {
		body = doc.Find("article .content").First()
	}
	if body.Length() == 0 {
		return articleDetails{}, fmt.Errorf("no content element in %s", articleURL)
	}

	var paragraphs []string
	body.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	image := doc.Find(".post-thumbnail img").First()
	if image.Length() == 0 {
		image = doc.Find(".entry-content img").First()
	}
	imageURL, _ := image.Attr("src")

	return articleDetails{content: paragraphs, imageURL: imageURL}, nil
}

func isStartupRelated(title, category string) bool {
	title = strings.ToLower(title)
	category = strings.ToLower(category)
	for _, kw := range startupKeywords {
		if strings.Contains(title, kw) || strings.Contains(category, kw) {
			return true
		}
	}
	return false
}
