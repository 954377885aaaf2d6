package result

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/course"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SaveResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	if err := config.Ping(r.Context()); err != nil {
		config.Error(w, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}

	var dto SaveResultDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.SaveResult(r.Context(), userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidResult):
			config.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, course.ErrCourseNotFound):
			config.Error(w, http.StatusNotFound, "course not found", nil)
		default:
			log.WithError(err).Error("Failed to save quiz result")
			config.Error(w, http.StatusInternalServerError, "internal server error", err)
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var courseID *uuid.UUID
	if raw := r.URL.Query().Get("courseId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "invalid course id", nil)
			return
		}
		courseID = &id
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.service.History(r.Context(), userID, courseID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, history)
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	stats, err := h.service.Statistics(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to compute quiz statistics")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
