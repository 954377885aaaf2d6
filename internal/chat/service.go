package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/llm"
)

var ErrEmptyMessage = errors.New("message is required")

const (
	historyWindow = 10
	historyLimit  = 50
)

const assistantSystemPrompt = `You are a friendly study assistant for an educational platform.
Answer questions about course material clearly and concisely. When a student
is stuck, explain the underlying concept before giving the answer.`

type Service interface {
	SendMessage(ctx context.Context, userID uuid.UUID, dto SendMessageDTO) (*SendMessageResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]ChatMessage, error)
	ClearHistory(ctx context.Context, userID uuid.UUID) error
}

type Options struct {
	Model        string
	InitialDelay time.Duration
	MaxTokens    int
}

func OptionsFromEnv() Options {
	opts := Options{
		Model:        os.Getenv("LLM_MODEL"),
		InitialDelay: time.Second,
		MaxTokens:    1024,
	}
	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}
	return opts
}

type service struct {
	repo     Repository
	provider llm.Provider
	opts     Options
}

func NewService(repo Repository, provider llm.Provider, opts Options) Service {
	return &service{repo: repo, provider: provider, opts: opts}
}

func (s *service) SendMessage(ctx context.Context, userID uuid.UUID, dto SendMessageDTO) (*SendMessageResponse, error) {
	log := config.WithContext(ctx)

	content := strings.TrimSpace(dto.Message)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	history, err := s.repo.FindByUser(userID, historyWindow)
	if err != nil {
		return nil, err
	}

	userMessage := ChatMessage{
		ID:      uuid.New(),
		UserID:  userID,
		Role:    RoleUser,
		Content: content,
	}
	if err := s.repo.Create(&userMessage); err != nil {
		log.WithError(err).Error("Failed to persist chat message")
		return nil, err
	}

	var reply string
	err = llm.RetryWithBackoff(ctx, 3, s.opts.InitialDelay, func() error {
		var callErr error
		reply, callErr = s.provider.Complete(ctx, llm.CompletionRequest{
			Model:       s.opts.Model,
			System:      assistantSystemPrompt,
			User:        buildConversation(history, content),
			Temperature: 0.7,
			MaxTokens:   s.opts.MaxTokens,
		})
		return callErr
	})
	if err != nil {
		log.WithError(err).Error("Assistant call failed")
		return nil, err
	}

	assistantMessage := ChatMessage{
		ID:      uuid.New(),
		UserID:  userID,
		Role:    RoleAssistant,
		Content: strings.TrimSpace(reply),
	}
	if err := s.repo.Create(&assistantMessage); err != nil {
		log.WithError(err).Error("Failed to persist assistant reply")
		return nil, err
	}

	return &SendMessageResponse{Reply: &assistantMessage}, nil
}

// buildConversation flattens recent history into the user prompt so any
// completion-style provider can carry context without a structured thread.
func buildConversation(history []ChatMessage, latest string) string {
	if len(history) == 0 {
		return latest
	}

	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	b.WriteString("\nNew message from the student:\n")
	b.WriteString(latest)
	return b.String()
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit int) ([]ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = historyLimit
	}
	return s.repo.FindByUser(userID, limit)
}

func (s *service) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteByUser(userID); err != nil {
		log.WithError(err).Error("Failed to clear chat history")
		return err
	}
	log.Infof("Cleared chat history for user %s", userID)
	return nil
}
