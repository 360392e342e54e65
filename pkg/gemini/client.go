package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var baseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-1.5-flash"

// ErrMissingAPIKey is returned before any request is made without a key
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// Client handles HTTP requests to the Generative Language API
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

// NewClient creates a new API client for the given key and model
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey: apiKey,
		model:  model,
	}
}

// Model returns the model name requests are sent to
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a single-turn prompt and returns the generated text
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Generate(ctx, GenerateRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model %s returned no content", c.model)
	}
	return text, nil
}

// Generate performs a raw generateContent call
func (c *Client) Generate(ctx context.Context, body GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "edease/1.0")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call model %s: %w", c.model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	return &out, nil
}
