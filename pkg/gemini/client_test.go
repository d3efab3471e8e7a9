package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"verdant-agenda/pkg/gemini"
)

func TestConfigValidate(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	cfg = gemini.Config{APIKey: "key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", cfg.Model)
	}
	if cfg.APIURL != gemini.DefaultAPIURL {
		t.Errorf("expected default API URL, got %s", cfg.APIURL)
	}
	if cfg.HTTPClient == nil {
		t.Errorf("expected default HTTP client")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if _, ok := req["contents"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "{\"suggested_time\": \"10:00 - 10:30\", \"reasoning\": \"First open slot\"}"}]}}
			],
			"usageMetadata": {"promptTokenCount": 120, "candidatesTokenCount": 24, "totalTokenCount": 144}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey: "test-key",
		Model:  "gemini-test",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "schedule my task"}}},
		},
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(resp.Content.Parts))
	}
	if resp.Usage.TotalTokens != 144 {
		t.Errorf("expected 144 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if client.Model() != "gemini-test" {
		t.Errorf("unexpected model: %s", client.Model())
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{})
	if err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	resp, err := client.GenerateContent(context.Background(), &gemini.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Content.Parts) != 0 {
		t.Errorf("expected empty content for empty candidates")
	}
}
