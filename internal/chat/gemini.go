package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Backend produces free text for a prompt. The production implementation
// talks to a Gemini-style generateContent endpoint.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// --------------------------------------------------
// Gemini HTTP client
// --------------------------------------------------

type GeminiClient struct {
	apiURL  string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

func NewGeminiClient(apiURL, apiKey string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiURL:  apiURL,
		apiKey:  apiKey,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {

	// A hung backend must never hold the request open indefinitely.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiURL+"?key="+c.apiKey,
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text backend returned status %d", resp.StatusCode)
	}

	var body geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("text backend returned no candidates")
	}

	return body.Candidates[0].Content.Parts[0].Text, nil
}

// Compile-time check
var _ Backend = (*GeminiClient)(nil)
