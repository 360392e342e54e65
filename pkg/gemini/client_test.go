package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_GenerateContent_Mock(t *testing.T) {
	mockResponse := `{
		"candidates": [
			{
				"content": {
					"role": "model",
					"parts": [{"text": "Move Math "}, {"text": "to the morning."}]
				},
				"finishReason": "STOP"
			}
		]
	}`

	var gotPath, gotKey string
	var gotBody GenerateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("secret", "gemini-test")

	text, err := client.GenerateContent(context.Background(), "optimize please")
	if err != nil {
		t.Fatalf("unexpected error generating mocked content: %v", err)
	}

	if text != "Move Math to the morning." {
		t.Errorf("expected concatenated parts, got %q", text)
	}
	if gotPath != "/models/gemini-test:generateContent" {
		t.Errorf("unexpected request path %s", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("expected API key header to be sent, got %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "optimize please" {
		t.Errorf("prompt was not sent in request body: %+v", gotBody)
	}
}

func TestClient_GenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	_, err := NewClient("bad", "").GenerateContent(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected API error message to be surfaced, got: %v", err)
	}
}

func TestClient_GenerateContent_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	_, err := NewClient("key", "").GenerateContent(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for empty candidate list")
	}
}

func TestClient_MissingAPIKey(t *testing.T) {
	client := NewClient("", "")

	if client.Model() != DefaultModel {
		t.Errorf("expected default model %s, got %s", DefaultModel, client.Model())
	}

	_, err := client.GenerateContent(context.Background(), "hi")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	// Runs before Close so the handler never outlives the test
	defer close(release)

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient("key", "").GenerateContent(ctx, "hi")
	if err == nil {
		t.Fatal("expected error when context deadline passes")
	}
}
