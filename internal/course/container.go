package course

import (
	"gorm.io/gorm"

	"github.com/learnhub-app/learnhub-api/internal/cache"
)

type CourseContainer struct {
	Handler *Handler
	Service Service
}

func NewCourseContainer(db *gorm.DB, c *cache.Cache) *CourseContainer {
	repo := NewRepository(db)
	service := NewService(repo, c)
	handler := NewHandler(service)

	return &CourseContainer{
		Handler: handler,
		Service: service,
	}
}
