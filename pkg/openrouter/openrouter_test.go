package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logsense/pkg/openrouter"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		cfg := openrouter.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := openrouter.Config{APIKey: "sk-test"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != openrouter.DefaultBaseURL {
			t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("HTTPClient not defaulted")
		}
	})
}

func TestChatCompletion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
				t.Errorf("Authorization = %q", got)
			}
			if got := r.Header.Get("X-Title"); got != "logsense" {
				t.Errorf("X-Title = %q", got)
			}

			var req openrouter.Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Model != "openai/gpt-4o-mini" {
				t.Errorf("model = %q", req.Model)
			}

			json.NewEncoder(w).Encode(openrouter.Response{
				ID:    "gen-123",
				Model: req.Model,
				Choices: []openrouter.Choice{
					{Message: openrouter.Message{Role: "assistant", Content: "looks like a nil deref"}},
				},
				Usage: openrouter.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			})
		}))
		defer srv.Close()

		client, err := openrouter.New(openrouter.Config{
			APIKey:  "sk-test",
			BaseURL: srv.URL,
			Title:   "logsense",
		})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		resp, err := client.ChatCompletion(context.Background(), &openrouter.Request{
			Model:    "openai/gpt-4o-mini",
			Messages: []openrouter.Message{{Role: "user", Content: "NPE at line 5"}},
		})
		if err != nil {
			t.Fatalf("ChatCompletion: %v", err)
		}
		if resp.Text() != "looks like a nil deref" {
			t.Errorf("Text() = %q", resp.Text())
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("upstream error envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"rate limited"}}`))
		}))
		defer srv.Close()

		client, _ := openrouter.New(openrouter.Config{APIKey: "sk-test", BaseURL: srv.URL})
		_, err := client.ChatCompletion(context.Background(), &openrouter.Request{
			Model:    "openai/gpt-4o-mini",
			Messages: []openrouter.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "rate limited") {
			t.Errorf("error %q does not surface upstream message", err)
		}
	})

	t.Run("missing model rejected", func(t *testing.T) {
		client, _ := openrouter.New(openrouter.Config{APIKey: "sk-test"})
		_, err := client.ChatCompletion(context.Background(), &openrouter.Request{
			Messages: []openrouter.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error for empty model")
		}
	})

	t.Run("empty response text", func(t *testing.T) {
		var resp openrouter.Response
		if resp.Text() != "" {
			t.Errorf("Text() on empty response = %q", resp.Text())
		}
	})
}
