package generator

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/course"
	"github.com/learnhub-app/learnhub-api/internal/llm"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := config.Ping(r.Context()); err != nil {
		config.Error(w, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}

	var dto GenerateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Generate(r.Context(), dto)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, ErrValidation):
			config.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, course.ErrCourseNotFound):
			config.Error(w, http.StatusNotFound, "course not found", nil)
		case errors.Is(err, ErrUnusableOutput):
			config.Error(w, http.StatusUnprocessableEntity, "unable to generate valid questions, please try again", err)
		case errors.Is(err, llm.ErrAtCapacity):
			config.Error(w, http.StatusServiceUnavailable, "generation capacity exhausted, try again later", nil)
		case errors.As(err, &upstream):
			log.WithError(err).Error("Upstream generation call failed")
			config.Error(w, http.StatusInternalServerError, "question generation failed", err)
		default:
			log.WithError(err).Error("Unexpected generation failure")
			config.Error(w, http.StatusInternalServerError, "internal server error", err)
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
