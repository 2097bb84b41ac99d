package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/config"
)

// PlaceholderMarker prefixes every response produced without a configured
// backend, so callers and users can tell generated text from echo text.
const PlaceholderMarker = "[placeholder]"

// placeholderEchoLimit bounds how much of the request is echoed back.
const placeholderEchoLimit = 200

// Service wraps a ChatClient with the model-tier policy: summarization tasks
// use the lighter, cheaper model at a low temperature; teaching tasks use the
// stronger model at a higher temperature. When no API key is configured the
// service answers every call with a marked placeholder instead of reaching
// the backend, so the rest of the pipeline stays exercisable offline. A
// configured but failing backend fails loudly.
type Service struct {
	client  ChatClient // nil in placeholder mode
	cfg     config.LLMConfig
	timeout time.Duration
	logger  *zap.Logger
}

// NewService builds the text-generation service from configuration.
func NewService(cfg config.LLMConfig, logger *zap.Logger) (*Service, error) {
	s := &Service{
		cfg:     cfg,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:  logger.Named("llm"),
	}

	if cfg.APIKey == "" {
		s.logger.Warn("No LLM API key configured; serving placeholder responses")
		return s, nil
	}

	client, err := NewClient(&ClientConfig{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey}, logger)
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

// NewServiceWithClient builds a service around an existing client. Used by
// tests to inject mocks.
func NewServiceWithClient(client ChatClient, cfg config.LLMConfig, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		cfg:     cfg,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:  logger.Named("llm"),
	}
}

// Summarize runs a summarization-tier completion: light model, deterministic
// temperature.
func (s *Service) Summarize(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.generate(ctx, s.cfg.SummaryModel, s.cfg.SummaryTemperature, systemPrompt, userPrompt)
}

// Teach runs a teaching-tier completion: stronger model, higher temperature.
// Teaching content benefits from elaboration; everything else stays terse.
func (s *Service) Teach(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.generate(ctx, s.cfg.TeachingModel, s.cfg.TeachTemperature, systemPrompt, userPrompt)
}

func (s *Service) generate(ctx context.Context, model string, temperature float64, systemPrompt, userPrompt string) (string, error) {
	if s.client == nil {
		return s.placeholder(userPrompt), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.client.Chat(ctx, ChatRequest{
		Model: model,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
		Temperature: temperature,
	})
}

// placeholder echoes a prefix of the user prompt with a visible marker.
func (s *Service) placeholder(userPrompt string) string {
	echo := []rune(userPrompt)
	if len(echo) > placeholderEchoLimit {
		echo = echo[:placeholderEchoLimit]
	}
	return PlaceholderMarker + " text generation is not configured; request excerpt: " + string(echo)
}
