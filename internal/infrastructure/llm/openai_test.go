package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"StartupContent/internal/config"
	"StartupContent/internal/domain"
)

func testInfo() domain.ArticleInfo {
	return domain.ArticleInfo{
		Title:          "Acme raises $30 million",
		CompanyName:    "Acme",
		FundingAmount:  "$30 million",
		Industry:       "fintech",
		ContentSummary: "Acme closed a Series B round.",
	}
}

func newTestClient(endpoint string) *OpenAIClient {
	return NewOpenAIClient(config.OpenAIConfig{
		Endpoint: endpoint,
		Model:    "gpt-3.5-turbo",
		APIKey:   "test-key",
	})
}

func completionResponse(text string) string {
	raw, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": text}},
		},
	})
	return string(raw)
}

func TestGeneratePostSendsLanguagePrompt(t *testing.T) {
	t.Parallel()

	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(completionResponse("  generated post  ")))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	post, err := client.GeneratePost(context.Background(), testInfo(), domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("GeneratePost: %v", err)
	}
	if post != "generated post" {
		t.Fatalf("post = %q, want trimmed model output", post)
	}
	if gotBody.Model != "gpt-3.5-turbo" {
		t.Fatalf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotBody.Messages))
	}
	if !strings.Contains(gotBody.Messages[1].Content, "in English") {
		t.Fatalf("prompt does not request English output: %q", gotBody.Messages[1].Content)
	}
	if !strings.Contains(gotBody.Messages[1].Content, "Acme") {
		t.Fatalf("prompt missing company name: %q", gotBody.Messages[1].Content)
	}
}

func TestGenerateReelScriptUsesReelPrompt(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(req.Messages[1].Content, "Instagram Reels") {
			t.Errorf("prompt is not a reel prompt: %q", req.Messages[1].Content)
		}
		w.Write([]byte(completionResponse("HOOK: test")))
	}))
	defer srv.Close()

	script, err := newTestClient(srv.URL).GenerateReelScript(context.Background(), testInfo())
	if err != nil {
		t.Fatalf("GenerateReelScript: %v", err)
	}
	if script != "HOOK: test" {
		t.Fatalf("script = %q", script)
	}
}

func TestCompleteRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream overload", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(completionResponse("ok after retry")))
	}))
	defer srv.Close()

	post, err := newTestClient(srv.URL).GeneratePost(context.Background(), testInfo(), domain.LanguageRussian)
	if err != nil {
		t.Fatalf("GeneratePost: %v", err)
	}
	if post != "ok after retry" {
		t.Fatalf("post = %q", post)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestCompleteDoesNotRetryBadRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad prompt", http.StatusBadRequest)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GeneratePost(context.Background(), testInfo(), domain.LanguageRussian); err == nil {
		t.Fatalf("expected error on 400 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1 (no retry)", got)
	}
}

func TestCompleteRejectsMisconfiguredClient(t *testing.T) {
	t.Parallel()

	client := NewOpenAIClient(config.OpenAIConfig{})
	if _, err := client.GeneratePost(context.Background(), testInfo(), domain.LanguageRussian); err == nil {
		t.Fatalf("expected misconfiguration error")
	}
}
