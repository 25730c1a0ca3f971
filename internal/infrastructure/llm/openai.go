package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"StartupContent/internal/config"
	"StartupContent/internal/domain"
	"StartupContent/internal/ports"
)

const (
	systemPromptPostRU = "Ты опытный копирайтер, специализирующийся на создании контента о стартапах и технологиях."
	systemPromptPostEN = "You are an experienced copywriter specializing in content about startups and technology."
	systemPromptReel   = "Ты опытный копирайтер, специализирующийся на создании сценариев для Instagram Reels."
)

// OpenAIClient implements ports.Generator against OpenAI-compatible
// chat completion APIs. Transient transport and 5xx/429 failures are
// retried with exponential backoff; any other failure is returned to
// the caller, which falls back to template generation.
type OpenAIClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ ports.Generator = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client from configuration.
func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GeneratePost asks the model for a social post in the given language.
func (c *OpenAIClient) GeneratePost(ctx context.Context, info domain.ArticleInfo, lang domain.Language) (string, error) {
	if lang == domain.LanguageEnglish {
		return c.complete(ctx, systemPromptPostEN, englishPostPrompt(info))
	}
	return c.complete(ctx, systemPromptPostRU, russianPostPrompt(info))
}

// GenerateReelScript asks the model for a Russian Instagram reel script.
func (c *OpenAIClient) GenerateReelScript(ctx context.Context, info domain.ArticleInfo) (string, error) {
	return c.complete(ctx, systemPromptReel, reelPrompt(info))
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("openai client is nil")
	}
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("openai client misconfigured")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat payload: %w", err)
	}

	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))

	var text string
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("new request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("call chat completion: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			apiErr := fmt.Errorf("openai error %s: %s", resp.Status, strings.TrimSpace(string(raw)))
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				return retry.RetryableError(apiErr)
			}
			return apiErr
		}

		var parsed chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("decode chat response: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return fmt.Errorf("chat response has no choices")
		}
		text = strings.TrimSpace(parsed.Choices[0].Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("chat response is empty")
	}
	return text, nil
}

func summaryHead(summary string) string {
	runes := []rune(summary)
	if len(runes) > 300 {
		return string(runes[:300])
	}
	return summary
}

func russianPostPrompt(info domain.ArticleInfo) string {
	return fmt.Sprintf(`Создай пост для Telegram о стартапе.

Информация о стартапе:
Название: %s
Заголовок статьи: %s
Сумма инвестиций: %s
Краткое содержание: %s

Требования к посту:
1. Пост должен быть на русском языке
2. Структура: яркое начало → основная часть с фактами → заключение с призывом к действию
3. Стиль: энергичный, экспертный, вдохновляющий
4. Длина: 150-200 слов
5. Добавь эмодзи для визуального разделения
6. В конце добавь рейтинг Дубского (от 1 до 5 ракет 🚀) и краткое обоснование
7. Добавь 4-5 релевантных хэштегов
8. Добавь призыв подписаться на канал: @https://t.me/evgeniydubskiy`,
		info.CompanyName, info.Title, info.FundingAmount, summaryHead(info.ContentSummary))
}

func englishPostPrompt(info domain.ArticleInfo) string {
	return fmt.Sprintf(`Create a post about a startup for LinkedIn and Medium.

Startup information:
Name: %s
Article title: %s
Funding amount: %s
Summary: %s

Requirements:
1. The post should be in English
2. Structure: attention-grabbing opening → main part with facts → conclusion with a call to action
3. Style: energetic, expert, inspirational
4. Length: 150-200 words
5. Add emojis for visual separation
6. At the end, add Dubskiy Rating (from 1 to 5 rockets 🚀) and a brief justification
7. Add 4-5 relevant hashtags
8. Add links to social media: Instagram: @https://www.instagram.com/erarta.ai/ and X: @https://x.com/evgeniydubskiy`,
		info.CompanyName, info.Title, info.FundingAmount, summaryHead(info.ContentSummary))
}

func reelPrompt(info domain.ArticleInfo) string {
	return fmt.Sprintf(`Напиши сценарий для Instagram Reels о стартапе.

Информация о стартапе:
Название: %s
Заголовок статьи: %s
Сумма инвестиций: %s
Индустрия: %s
Краткое содержание: %s

Требования к сценарию:
1. Сценарий должен быть на русском языке
2. Структура: цепляющее начало (hook) → основная часть → призыв к действию
3. Начало должно привлечь внимание за первые 3 секунды
4. Общая продолжительность ролика: 30-60 секунд
5. Добавь идеи для визуального сопровождения
6. Текст должен быть энергичным и вдохновляющим
7. Формат ответа:

HOOK: [текст для первых 3-5 секунд]

ОСНОВНАЯ ЧАСТЬ: [основное содержание]

ЗАКЛЮЧЕНИЕ: [призыв к действию]

ВИЗУАЛЬНЫЕ ИДЕИ: [краткие идеи для визуального сопровождения]

ХЭШТЕГИ: [5-7 релевантных хэштегов]`,
		info.CompanyName, info.Title, info.FundingAmount, info.Industry, summaryHead(info.ContentSummary))
}
