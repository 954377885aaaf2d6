package llm

import (
	"context"
	"fmt"
	"os"
)

// CompletionRequest is the provider-neutral shape of a single generation call.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Provider is a chat-completion style text generator. Any compatible
// backend satisfies the contract; the caller treats it as a black box.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// UpstreamError carries the status and message of a failed provider call.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the failure is worth retrying with backoff.
func (e *UpstreamError) Transient() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// NewProviderFromEnv selects the provider implementation via LLM_PROVIDER.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	switch os.Getenv("LLM_PROVIDER") {
	case "", "openai":
		return NewOpenAIProvider()
	case "gemini":
		return NewGeminiProvider(ctx)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", os.Getenv("LLM_PROVIDER"))
	}
}
