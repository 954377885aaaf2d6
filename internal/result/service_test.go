package result

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/learnhub-app/learnhub-api/internal/cache"
	"github.com/learnhub-app/learnhub-api/internal/course"
	"github.com/learnhub-app/learnhub-api/internal/generator"
)

type fakeCourseService struct {
	course *course.Course
	err    error
}

func (f *fakeCourseService) Create(ctx context.Context, userID uuid.UUID, dto course.CreateCourseDTO) (*course.Course, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCourseService) List(ctx context.Context) ([]course.Course, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCourseService) GetByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.course, nil
}

func (f *fakeCourseService) Update(ctx context.Context, id, userID uuid.UUID, dto course.UpdateCourseDTO) (*course.Course, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCourseService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return errors.New("not implemented")
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&QuizResult{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func validSaveDTO(courseID uuid.UUID) SaveResultDTO {
	return SaveResultDTO{
		CourseID: courseID.String(),
		Questions: []AnsweredQuestion{
			{Question: "Which keyword starts a goroutine?", CorrectAnswer: "A", UserAnswer: "A", IsCorrect: true, TimeSpent: 12},
			{Question: "Which builtin closes a channel?", CorrectAnswer: "A", UserAnswer: "C", IsCorrect: false, TimeSpent: 20},
		},
		Score:           1,
		TotalQuestions:  2,
		Difficulty:      generator.DifficultyMedium,
		TimeSpent:       32,
		TimePerQuestion: 30,
	}
}

func TestSaveResult(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	courses := &fakeCourseService{course: &course.Course{ID: courseID, Name: "Go Fundamentals"}}
	s := NewService(NewRepository(setupDB(t)), courses, setupCache(t))

	t.Run("PersistsAndReturnsHistory", func(t *testing.T) {
		resp, err := s.SaveResult(context.Background(), userID, validSaveDTO(courseID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Result.UserID != userID || resp.Result.CourseID != courseID {
			t.Error("saved record does not carry the expected owner and course")
		}
		if len(resp.History) != 1 {
			t.Errorf("expected history of 1, got %d", len(resp.History))
		}

		var stored []AnsweredQuestion
		if err := json.Unmarshal(resp.Result.Questions, &stored); err != nil {
			t.Fatalf("stored questions are not valid JSON: %v", err)
		}
		if len(stored) != 2 || !stored[0].IsCorrect || stored[1].IsCorrect {
			t.Errorf("stored questions do not round-trip: %+v", stored)
		}
	})

	t.Run("RejectsEmptyBody", func(t *testing.T) {
		_, err := s.SaveResult(context.Background(), userID, SaveResultDTO{})
		if !errors.Is(err, ErrInvalidResult) {
			t.Fatalf("expected ErrInvalidResult, got %v", err)
		}
	})

	t.Run("RejectsMalformedCourseID", func(t *testing.T) {
		dto := validSaveDTO(courseID)
		dto.CourseID = "not-a-uuid"
		_, err := s.SaveResult(context.Background(), userID, dto)
		if !errors.Is(err, course.ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})

	t.Run("RejectsUnknownCourse", func(t *testing.T) {
		missing := NewService(NewRepository(setupDB(t)), &fakeCourseService{err: course.ErrCourseNotFound}, nil)
		_, err := missing.SaveResult(context.Background(), userID, validSaveDTO(courseID))
		if !errors.Is(err, course.ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})
}

func TestHistory(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	userID := uuid.New()
	courseA := uuid.New()
	courseB := uuid.New()

	now := time.Now()
	fixtures := []QuizResult{
		{ID: uuid.New(), UserID: userID, CourseID: courseA, Score: 1, TotalQuestions: 2, Difficulty: generator.DifficultyEasy, Questions: []byte(`[]`), TakenAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), UserID: userID, CourseID: courseB, Score: 2, TotalQuestions: 2, Difficulty: generator.DifficultyHard, Questions: []byte(`[]`), TakenAt: now.Add(-time.Hour)},
		{ID: uuid.New(), UserID: userID, CourseID: courseA, Score: 0, TotalQuestions: 2, Difficulty: generator.DifficultyEasy, Questions: []byte(`[]`), TakenAt: now},
		{ID: uuid.New(), UserID: uuid.New(), CourseID: courseA, Score: 2, TotalQuestions: 2, Difficulty: generator.DifficultyEasy, Questions: []byte(`[]`), TakenAt: now},
	}
	for i := range fixtures {
		if err := repo.Create(&fixtures[i]); err != nil {
			t.Fatalf("failed to seed fixture: %v", err)
		}
	}

	s := NewService(repo, &fakeCourseService{}, nil)

	t.Run("NewestFirstScopedToUser", func(t *testing.T) {
		history, err := s.History(context.Background(), userID, nil, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 3 {
			t.Fatalf("expected 3 records, got %d", len(history))
		}
		if !history[0].TakenAt.After(history[1].TakenAt) {
			t.Error("history is not newest first")
		}
	})

	t.Run("FiltersByCourse", func(t *testing.T) {
		history, err := s.History(context.Background(), userID, &courseA, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("expected 2 records for course, got %d", len(history))
		}
	})

	t.Run("AppliesLimit", func(t *testing.T) {
		history, err := s.History(context.Background(), userID, nil, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("expected 1 record, got %d", len(history))
		}
	})
}

func TestStatistics(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	userID := uuid.New()
	courseID := uuid.New()

	fixtures := []QuizResult{
		{ID: uuid.New(), UserID: userID, CourseID: courseID, Score: 1, TotalQuestions: 2, Difficulty: generator.DifficultyEasy, Questions: []byte(`[]`), TimeSpent: 60, TakenAt: time.Now()},
		{ID: uuid.New(), UserID: userID, CourseID: courseID, Score: 2, TotalQuestions: 2, Difficulty: generator.DifficultyHard, Questions: []byte(`[]`), TimeSpent: 90, TakenAt: time.Now()},
	}
	for i := range fixtures {
		if err := repo.Create(&fixtures[i]); err != nil {
			t.Fatalf("failed to seed fixture: %v", err)
		}
	}

	c := setupCache(t)
	s := NewService(repo, &fakeCourseService{course: &course.Course{ID: courseID}}, c)

	stats, err := s.Statistics(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalQuizzes != 2 {
		t.Errorf("expected 2 quizzes, got %d", stats.TotalQuizzes)
	}
	if stats.AverageScore != 75 {
		t.Errorf("expected average 75, got %f", stats.AverageScore)
	}
	if stats.BestScore != 100 {
		t.Errorf("expected best 100, got %f", stats.BestScore)
	}
	if stats.TotalTimeSpent != 150 {
		t.Errorf("expected total time 150, got %d", stats.TotalTimeSpent)
	}
	if stats.ByDifficulty["easy"] != 1 || stats.ByDifficulty["hard"] != 1 {
		t.Errorf("unexpected difficulty counts: %v", stats.ByDifficulty)
	}

	t.Run("CacheInvalidatedOnSave", func(t *testing.T) {
		// First call above primed the cache; a save must evict it so the
		// next read reflects the new record.
		if _, err := s.SaveResult(context.Background(), userID, validSaveDTO(courseID)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats, err := s.Statistics(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalQuizzes != 3 {
			t.Errorf("expected 3 quizzes after save, got %d", stats.TotalQuizzes)
		}
	})

	t.Run("EmptyUserHasZeroStats", func(t *testing.T) {
		stats, err := s.Statistics(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalQuizzes != 0 || stats.AverageScore != 0 {
			t.Errorf("expected zeroed statistics, got %+v", stats)
		}
	})
}
