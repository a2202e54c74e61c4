package summarize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jmk307/hellmap-api/internal/pkg/env"
)

const (
	defaultInferenceURL = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

	// maxInputRunes caps the joined report text before it is sent to the
	// summarization model (BART input limit).
	maxInputRunes = 1000

	maxSummaryLength = 100
	minSummaryLength = 30
)

// Client calls the hosted text-summarization endpoint. The result is cosmetic
// flavor text, so callers are expected to fall back to KeywordSummary on any
// failure instead of retrying.
type Client struct {
	InferenceURL string
	APIToken     string

	HTTPClient *http.Client
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type inferenceResult struct {
	SummaryText string `json:"summary_text"`
}

// NewClientFromEnv builds the summarizer client from environment settings.
func NewClientFromEnv() *Client {
	return &Client{
		InferenceURL: strings.TrimSpace(env.GetEnv("SUMMARIZER_URL", defaultInferenceURL)),
		APIToken:     strings.TrimSpace(env.GetEnv("SUMMARIZER_TOKEN", "")),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Summarize joins the report contents, truncates them to the model input
// limit and requests a one-paragraph summary. Any transport, status or
// decoding failure is returned as an error; no retry is attempted.
func (c *Client) Summarize(ctx context.Context, contents []string) (string, error) {
	input := truncateRunes(strings.Join(contents, " "), maxInputRunes)
	if input == "" {
		return "", fmt.Errorf("summarize: empty input")
	}

	payload, err := sonic.Marshal(inferenceRequest{
		Inputs: input,
		Parameters: inferenceParameters{
			MaxLength: maxSummaryLength,
			MinLength: minSummaryLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarize: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.InferenceURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("summarize: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarize: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarize: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("summarize: read response: %w", err)
	}

	var results []inferenceResult
	if err := sonic.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("summarize: decode response: %w", err)
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		return "", fmt.Errorf("summarize: empty result")
	}

	return results[0].SummaryText, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
