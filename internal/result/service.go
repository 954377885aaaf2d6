package result

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/cache"
	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/course"
)

var ErrInvalidResult = errors.New("courseId, questions and totalQuestions are required")

const (
	historyLimit  = 10
	statsCacheTTL = 2 * time.Minute
)

type Service interface {
	SaveResult(ctx context.Context, userID uuid.UUID, dto SaveResultDTO) (*SaveResultResponse, error)
	History(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID, limit int) ([]QuizResult, error)
	Statistics(ctx context.Context, userID uuid.UUID) (*Statistics, error)
}

type service struct {
	repo    Repository
	courses course.Service
	cache   *cache.Cache
}

func NewService(repo Repository, courses course.Service, c *cache.Cache) Service {
	return &service{repo: repo, courses: courses, cache: c}
}

func (s *service) SaveResult(ctx context.Context, userID uuid.UUID, dto SaveResultDTO) (*SaveResultResponse, error) {
	log := config.WithContext(ctx)

	if dto.CourseID == "" || len(dto.Questions) == 0 || dto.TotalQuestions <= 0 {
		return nil, ErrInvalidResult
	}

	courseID, err := uuid.Parse(dto.CourseID)
	if err != nil {
		return nil, course.ErrCourseNotFound
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	questions, err := json.Marshal(dto.Questions)
	if err != nil {
		return nil, err
	}

	record := QuizResult{
		ID:              uuid.New(),
		UserID:          userID,
		CourseID:        courseID,
		Score:           dto.Score,
		TotalQuestions:  dto.TotalQuestions,
		Difficulty:      dto.Difficulty,
		Questions:       questions,
		TimeSpent:       dto.TimeSpent,
		TimePerQuestion: dto.TimePerQuestion,
	}
	if err := s.repo.Create(&record); err != nil {
		log.WithError(err).Error("Failed to save quiz result")
		return nil, err
	}

	s.cache.Delete(ctx, statsCacheKey(userID))

	history, err := s.repo.FindByUser(userID, historyLimit)
	if err != nil {
		log.WithError(err).Warn("Saved result but failed to load history")
		history = []QuizResult{record}
	}

	log.Infof("Saved quiz result %s for user %s", record.ID, userID)
	return &SaveResultResponse{Result: &record, History: history}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID, limit int) ([]QuizResult, error) {
	if limit <= 0 || limit > 100 {
		limit = historyLimit
	}
	if courseID != nil {
		return s.repo.FindByUserAndCourse(userID, *courseID, limit)
	}
	return s.repo.FindByUser(userID, limit)
}

// Statistics aggregates in memory rather than in SQL. Per-user result sets
// are small and the aggregate is cached, so a portable scan beats a dialect
// specific aggregation query.
func (s *service) Statistics(ctx context.Context, userID uuid.UUID) (*Statistics, error) {
	log := config.WithContext(ctx)

	if cached, ok := s.cache.Get(ctx, statsCacheKey(userID)); ok {
		var stats Statistics
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		log.Warnf("Discarding unreadable statistics cache entry for user %s", userID)
	}

	results, err := s.repo.AllByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := aggregate(results)

	if encoded, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, statsCacheKey(userID), string(encoded), statsCacheTTL)
	}
	return stats, nil
}

func aggregate(results []QuizResult) *Statistics {
	stats := &Statistics{ByDifficulty: map[string]int{}}

	var scoreSum float64
	for _, r := range results {
		stats.TotalQuizzes++
		stats.TotalTimeSpent += r.TimeSpent
		stats.ByDifficulty[string(r.Difficulty)]++

		if r.TotalQuestions > 0 {
			pct := float64(r.Score) / float64(r.TotalQuestions) * 100
			scoreSum += pct
			if pct > stats.BestScore {
				stats.BestScore = pct
			}
		}
	}
	if stats.TotalQuizzes > 0 {
		stats.AverageScore = scoreSum / float64(stats.TotalQuizzes)
	}
	return stats
}

func statsCacheKey(userID uuid.UUID) string {
	return "quizstats:" + userID.String()
}
