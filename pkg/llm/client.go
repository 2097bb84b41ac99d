package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
)

// Client provides access to OpenAI-compatible chat-completion endpoints.
type Client struct {
	client  *openai.Client
	baseURL string
	logger  *zap.Logger
}

// ClientConfig holds configuration for creating a chat client.
type ClientConfig struct {
	BaseURL string // e.g. "https://dashscope.aliyuncs.com/compatible-mode/v1"
	APIKey  string
}

// NewClient creates a new OpenAI-compatible chat client.
func NewClient(cfg *ClientConfig, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		baseURL: cfg.BaseURL,
		logger:  logger.Named("llm"),
	}, nil
}

// Chat sends a chat-completion request and returns the first choice's
// message content. Non-success responses fail the call; there is no retry at
// this layer.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	c.logger.Debug("LLM request",
		zap.String("model", req.Model),
		zap.Int("messages", len(messages)),
		zap.Float64("temperature", req.Temperature))

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		c.logger.Error("LLM request failed",
			zap.String("model", req.Model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("%w: chat completion: %v", apperrors.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", apperrors.ErrUpstream)
	}

	c.logger.Info("LLM request completed",
		zap.String("model", req.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}
