package result

import (
	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-api/internal/cache"
	"github.com/learnhub-app/learnhub-api/internal/course"
)

type ResultContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewResultContainer(db *gorm.DB, courses course.Service, c *cache.Cache) *ResultContainer {
	repo := NewRepository(db)
	service := NewService(repo, courses, c)
	handler := NewHandler(service)

	return &ResultContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
