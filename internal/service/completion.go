package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SEP491/FitBridge-Chatbot/internal/config"
	"github.com/SEP491/FitBridge-Chatbot/internal/logger"
	"github.com/go-resty/resty/v2"
)

// CompletionService calls an OpenAI-compatible chat-completions API for
// the free-conversation fallback. It is the only network dependency of
// the chat flow and every failure degrades to a fixed reply upstream.
type CompletionService struct {
	cfg    config.CompletionConfig
	client *resty.Client
}

// NewCompletionService creates the completion client.
// Parameters:
//   - cfg: completion configuration including API key and base URL.
// Returns:
//   - *CompletionService: configured service instance.
func NewCompletionService(cfg config.CompletionConfig) *CompletionService {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}

	return &CompletionService{cfg: cfg, client: client}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt and returns the model's reply text.
// Parameters:
//   - ctx: request context.
//   - prompt: full prompt including persona and history context.
// Returns:
//   - string: reply text.
//   - error: non-nil when disabled, on transport failure, or when the
//     API returns no usable text.
func (s *CompletionService) Complete(ctx context.Context, prompt string) (string, error) {
	if !s.cfg.Enabled {
		return "", fmt.Errorf("completion is disabled")
	}

	start := time.Now()

	var result chatCompletionResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{
			Model: s.cfg.Model,
			Messages: []chatMessage{
				{Role: "user", Content: prompt},
			},
			Temperature: 0.7,
		}).
		SetResult(&result).
		Post(s.cfg.BaseURL + "/chat/completions")

	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("completion returned empty text")
	}

	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldSize:       len(text),
	}).Debug(ctx, "Completion succeeded")

	return text, nil
}
