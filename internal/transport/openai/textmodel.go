package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/moradia-ai/moradia/internal/domain"
	"github.com/moradia-ai/moradia/internal/metrics"
)

// TextModel is a chat-completion provider using the OpenAI-compatible API
// (OpenAI, Gemini via the compatibility endpoint, and the like).
type TextModel struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// Config holds the model provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewTextModel creates an OpenAI-compatible chat completion provider.
func NewTextModel(cfg *Config) *TextModel {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &TextModel{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Generate sends the instruction and user text as a chat completion and
// returns the raw model output. Temperature is pinned to zero so structured
// extraction stays deterministic.
func (m *TextModel) Generate(ctx context.Context, instruction, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	}

	start := time.Now()

	resp, err := m.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ModelRequestsTotal.WithLabelValues(m.provider, m.model, "error").Inc()
		metrics.ModelErrorsTotal.WithLabelValues(m.provider, m.model, "api_error").Inc()
		return "", parseAPIError(err)
	}

	metrics.ModelRequestsTotal.WithLabelValues(m.provider, m.model, "success").Inc()
	metrics.ModelRequestDuration.WithLabelValues(m.provider, m.model).Observe(duration.Seconds())

	if resp.Usage.TotalTokens > 0 {
		metrics.ModelTokensTotal.WithLabelValues(m.provider, m.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.ModelTokensTotal.WithLabelValues(m.provider, m.model, "completion").Add(float64(resp.Usage.CompletionTokens))
		metrics.ModelTokensTotal.WithLabelValues(m.provider, m.model, "total").Add(float64(resp.Usage.TotalTokens))
	}

	if len(resp.Choices) == 0 {
		// Empty output is a domain concern, the caller decides how to report it.
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (m *TextModel) HealthCheck(ctx context.Context) error {
	if _, err := m.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrModelProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrModelProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("model API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("model API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("model API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("model request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
