// Package ai generates the optional plain-language narrative for a quality
// report via an OpenAI-compatible chat-completions endpoint. One blocking
// request per run, no retries; every failure degrades to an error the caller
// folds into the rendered report as an inline note.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dqagent/internal/config"
	"dqagent/internal/errors"
	"dqagent/internal/quality"
	"dqagent/internal/reporting"
)

const systemPrompt = "You are a data quality analyst. Write reports that " +
	"non-developers can understand."

const promptTemplate = `The JSON below is the result of quality checks over one day of sales CSV data.

Write a Markdown report a non-specialist can understand, with exactly these sections:

## Summary
- Overall data quality in 3-5 lines.

## Detailed Analysis
- Focus on columns with many missing values.
- Explain missing required columns or extra columns if any.
- Explain date parse failures and likely causes if any.
- Explain numeric columns with many outliers and what to do about them.
- Call out duplicate orders and business-rule violations.

## Recommended Actions
- 3-5 bullet points of concrete next steps from an operations and data
  perspective.

Use the figures from the JSON where helpful.

Quality check result JSON:

` + "```json\n%s\n```"

// Client calls the narrative endpoint.
type Client struct {
	logger *slog.Logger
	cfg    config.AIConfig
	http   *http.Client
}

// NewClient creates a narrative client from config.
func NewClient(logger *slog.Logger, cfg config.AIConfig) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
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

// Narrative generates the Markdown narrative for a report. The report JSON
// is embedded in the prompt verbatim.
func (c *Client) Narrative(ctx context.Context, report *quality.Report) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New(errors.CodeNarrativeFailed, "no API key configured")
	}

	reportJSON, err := reporting.JSON(report)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeNarrativeFailed, "failed to marshal report for prompt")
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, reportJSON)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeNarrativeFailed, "failed to encode request")
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeNarrativeFailed, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeNarrativeFailed, "narrative request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeNarrativeFailed, "failed to read narrative response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.CodeNarrativeFailed, "narrative endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, errors.CodeNarrativeFailed, "failed to decode narrative response")
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", errors.New(errors.CodeNarrativeFailed, "narrative response was empty")
	}

	c.logger.Info("narrative generated",
		slog.String("model", c.cfg.Model),
		slog.Duration("duration", time.Since(start)))

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
