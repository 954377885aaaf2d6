package chat

import (
	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-api/internal/llm"
)

type ChatContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewChatContainer(db *gorm.DB, provider llm.Provider) *ChatContainer {
	repo := NewRepository(db)
	service := NewService(repo, provider, OptionsFromEnv())
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
