package course

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/cache"
	"github.com/learnhub-app/learnhub-api/internal/config"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotOwner       = errors.New("course does not belong to user")
	ErrInvalidCourse  = errors.New("course name is required")
)

const cacheTTL = 5 * time.Minute

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateCourseDTO) (*Course, error)
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Course, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateCourseDTO) (*Course, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateCourseDTO) (*Course, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" {
		return nil, ErrInvalidCourse
	}
	category := dto.Category
	if !category.IsValid() {
		category = CategoryOther
	}

	c := Course{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		Category:    category,
		Tags:        dto.Tags,
		CreatedBy:   userID,
	}
	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create course")
		return nil, err
	}

	log.Infof("Created course %s", c.ID)
	return &c, nil
}

func (s *service) List(ctx context.Context) ([]Course, error) {
	return s.repo.FindAll()
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	log := config.WithContext(ctx)

	if cached, ok := s.cache.Get(ctx, cacheKey(id)); ok {
		var c Course
		if err := json.Unmarshal([]byte(cached), &c); err == nil {
			return &c, nil
		}
		log.Warnf("Discarding unreadable cache entry for course %s", id)
	}

	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	if encoded, err := json.Marshal(c); err == nil {
		s.cache.Set(ctx, cacheKey(id), string(encoded), cacheTTL)
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateCourseDTO) (*Course, error) {
	log := config.WithContext(ctx)

	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	if c.CreatedBy != userID {
		return nil, ErrNotOwner
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.Category != nil && dto.Category.IsValid() {
		c.Category = *dto.Category
	}
	if dto.Tags != nil {
		c.Tags = *dto.Tags
	}

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Failed to update course")
		return nil, err
	}

	s.cache.Delete(ctx, cacheKey(id))
	return c, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCourseNotFound
	}
	if c.CreatedBy != userID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Delete(ctx, cacheKey(id))
	return nil
}

func cacheKey(id uuid.UUID) string {
	return "course:" + id.String()
}
