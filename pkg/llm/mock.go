package llm

import "context"

// MockChatClient is a configurable mock for testing text-generation
// functionality. Set the function field to control behavior in tests.
type MockChatClient struct {
	// ChatFunc is called when Chat is invoked.
	// If nil, returns an empty string and nil error.
	ChatFunc func(ctx context.Context, req ChatRequest) (string, error)

	// Call tracking for verification.
	ChatCalls []ChatRequest
}

// NewMockChatClient creates a new mock.
func NewMockChatClient() *MockChatClient {
	return &MockChatClient{}
}

// Chat implements ChatClient.
func (m *MockChatClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	m.ChatCalls = append(m.ChatCalls, req)
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	return "", nil
}

// Reset clears call tracking.
func (m *MockChatClient) Reset() {
	m.ChatCalls = nil
}

// Ensure MockChatClient implements ChatClient at compile time.
var _ ChatClient = (*MockChatClient)(nil)
