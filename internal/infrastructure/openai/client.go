package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/marketlens/backend/internal/domain"
)

// Config holds the settings for the chat completions client.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
	Country     string
	City        string
}

// Client handles communication with the OpenAI chat completions API using a
// search-preview model. One request per search, no retries: a failed call is
// reported to the user rather than silently repeated against a paid API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	country     string
	city        string
	debug       bool
}

// NewClient creates a new chat completions client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		// Market searches routinely run for over a minute
		timeout = 120 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		country:     cfg.Country,
		city:        cfg.City,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// chatRequest is the chat completions request body. The user_location object
// biases the model's web search toward the target market.
type chatRequest struct {
	Model            string            `json:"model"`
	WebSearchOptions *webSearchOptions `json:"web_search_options,omitempty"`
	Messages         []chatMessage     `json:"messages"`
	Temperature      float64           `json:"temperature"`
}

type webSearchOptions struct {
	UserLocation *userLocation `json:"user_location,omitempty"`
}

type userLocation struct {
	Type    string `json:"type"`
	Country string `json:"country"`
	City    string `json:"city"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as the sole user message and returns the model's
// reply content as an opaque text blob.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	}
	if c.country != "" || c.city != "" {
		reqBody.WebSearchOptions = &webSearchOptions{
			UserLocation: &userLocation{
				Type:    "approximate",
				Country: c.country,
				City:    c.city,
			},
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "MarketLens/1.0")

	if c.debug {
		log.Printf("[OpenAI] Completion request: model=%s, prompt=%d bytes", c.model, len(prompt))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrModelAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrModelAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[OpenAI] API error - Status: %d, Body: %s", resp.StatusCode, truncate(string(body), 512))
		return "", fmt.Errorf("%w: status %d", domain.ErrModelAPIFailure, resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", domain.ErrModelAPIFailure, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: %v", domain.ErrModelAPIFailure, domain.ErrEmptyCompletion)
	}

	if c.debug {
		log.Printf("[OpenAI] Completion received: %d bytes in %s", len(completion.Choices[0].Message.Content), time.Since(start).Round(time.Millisecond))
	}

	return completion.Choices[0].Message.Content, nil
}

// truncate shortens long API error bodies for logging
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
