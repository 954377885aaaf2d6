package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/learnhub-app/learnhub-api/internal/config"
)

type openAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider builds a client for any chat-completions compatible
// endpoint. LLM_BASE_URL overrides the default OpenAI host.
func NewOpenAIProvider() (Provider, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return nil, errors.New("LLM_API_KEY must be set")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openAIProvider{client: openai.NewClientWithConfig(cfg)}, nil
}

func (p *openAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", wrapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{StatusCode: 502, Message: "response contained no choices"}
	}

	content := resp.Choices[0].Message.Content
	log.Debugf("Model %s returned %d characters", req.Model, len(content))
	return content, nil
}

func wrapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: fmt.Sprintf("%v", apiErr.Message)}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	// Transport-level failure (reset, timeout); left unwrapped for IsTransient.
	return err
}
