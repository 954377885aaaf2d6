package result

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/course"
	"github.com/learnhub-app/learnhub-api/internal/generator"
)

func TestSaveResultHandler(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	courses := &fakeCourseService{course: &course.Course{ID: courseID, Name: "Go Fundamentals"}}

	newHandler := func(t *testing.T) *Handler {
		t.Helper()
		return NewHandler(NewService(NewRepository(setupDB(t)), courses, nil))
	}

	authed := func(req *http.Request) *http.Request {
		claims := &auth.UserClaims{UserID: userID.String(), Role: "STUDENT"}
		return req.WithContext(auth.WithClaims(req.Context(), claims))
	}

	body := `{"courseId":"` + courseID.String() + `","questions":[{"question":"Q","correctAnswer":"A","userAnswer":"A","isCorrect":true,"timeSpent":10}],"score":1,"totalQuestions":1,"difficulty":"easy","timeSpent":10,"timePerQuestion":30}`

	t.Run("RequiresAuth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/quiz/save-result", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newHandler(t).SaveResult(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("MalformedTokenSubjectIs401", func(t *testing.T) {
		claims := &auth.UserClaims{UserID: "not-a-uuid", Role: "STUDENT"}
		req := httptest.NewRequest(http.MethodPost, "/quiz/save-result", strings.NewReader(body))
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
		rec := httptest.NewRecorder()
		newHandler(t).SaveResult(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("DatabaseUnavailable", func(t *testing.T) {
		old := config.DB
		config.DB = nil
		t.Cleanup(func() { config.DB = old })

		req := authed(httptest.NewRequest(http.MethodPost, "/quiz/save-result", strings.NewReader(body)))
		rec := httptest.NewRecorder()
		newHandler(t).SaveResult(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})

	t.Run("PersistsAndReturns201", func(t *testing.T) {
		withHandlerDB(t)

		req := authed(httptest.NewRequest(http.MethodPost, "/quiz/save-result", strings.NewReader(body)))
		rec := httptest.NewRecorder()
		newHandler(t).SaveResult(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"history"`) {
			t.Errorf("response missing history: %s", rec.Body.String())
		}
	})

	t.Run("EmptyBodyIs400", func(t *testing.T) {
		withHandlerDB(t)

		req := authed(httptest.NewRequest(http.MethodPost, "/quiz/save-result", strings.NewReader(`{}`)))
		rec := httptest.NewRecorder()
		newHandler(t).SaveResult(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

// withHandlerDB points the shared pool at a sqlite database so the
// handler's availability check passes.
func withHandlerDB(t *testing.T) {
	t.Helper()
	old := config.DB
	config.DB = setupDB(t)
	t.Cleanup(func() { config.DB = old })
}

func TestStatisticsHandler(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	record := QuizResult{
		ID: uuid.New(), UserID: userID, CourseID: uuid.New(),
		Score: 2, TotalQuestions: 2, Difficulty: generator.DifficultyEasy,
		Questions: []byte(`[]`), TimeSpent: 40,
	}
	if err := repo.Create(&record); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	h := NewHandler(NewService(repo, &fakeCourseService{}, nil))

	claims := &auth.UserClaims{UserID: userID.String(), Role: "STUDENT"}
	req := httptest.NewRequest(http.MethodGet, "/quiz/statistics", nil)
	req = req.WithContext(auth.WithClaims(context.Background(), claims))
	rec := httptest.NewRecorder()
	h.Statistics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total_quizzes":1`) {
		t.Errorf("unexpected statistics body: %s", rec.Body.String())
	}
}
