// Package openai provides the chat-completions client used to turn
// gathered headlines into a Markdown briefing.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client handles communication with the OpenAI chat-completions API
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	stubMode   bool
}

// NewClient creates a new OpenAI client with the given configuration.
// In stub mode no network calls are made and a canned briefing is returned.
func NewClient(baseURL, apiKey, model string, maxTokens int, timeout time.Duration, stubMode bool) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
		stubMode:   stubMode,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

const stubBriefing = `### News
- Nothing happened today, which several observers called "a welcome change". ([example.com](https://example.com/quiet-day))

### Technology
- A new release of your favorite tool shipped with the bug you reported fixed. ([example.com](https://example.com/release))
`

// GenerateBriefing sends the prompt to the chat-completions endpoint and
// returns the Markdown briefing text.
func (c *Client) GenerateBriefing(ctx context.Context, systemMessage, prompt string) (string, error) {
	if c.stubMode {
		return stubBriefing, nil
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed chatResponse
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	// The API reports failures in-band as an error object
	if parsed.Error != nil {
		return "", fmt.Errorf("openai error (%s): %s", parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(body))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned no completion")
	}

	return parsed.Choices[0].Message.Content, nil
}
