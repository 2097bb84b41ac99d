// Package llm provides OpenAI-compatible text-generation functionality.
package llm

import "context"

// Message roles in OpenAI chat format.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry in a chat-completion conversation.
type Message struct {
	Role    string
	Content string
}

// ChatRequest is a single chat-completion call.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int // 0 means no explicit bound
}

// ChatClient defines the interface for chat-completion backends.
// Use this interface for dependency injection to enable mocking in tests.
type ChatClient interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// Ensure Client implements ChatClient at compile time.
var _ ChatClient = (*Client)(nil)
