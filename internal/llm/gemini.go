package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/learnhub-app/learnhub-api/internal/config"
)

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider reads GEMINI_API_KEY / GOOGLE_API_KEY from the environment.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := config.WithContext(ctx)

	prompt := req.System + "\n\n" + req.User

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := p.client.Models.GenerateContent(ctx, req.Model, genai.Text(prompt), cfg)
	if err != nil {
		return "", wrapGeminiError(err)
	}

	raw := result.Text()
	if raw == "" {
		return "", &UpstreamError{StatusCode: 502, Message: "empty model response"}
	}

	log.Debugf("Model %s returned %d characters", req.Model, len(raw))
	return raw, nil
}

func wrapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	return err
}
