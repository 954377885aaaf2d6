package course

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var dto CreateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	c, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCourse) {
			config.Error(w, http.StatusBadRequest, "course name is required", nil)
			return
		}
		log.WithError(err).Error("Failed to create course")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	courses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list courses")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := courseID(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			config.Error(w, http.StatusNotFound, "course not found", nil)
			return
		}
		log.WithError(err).Error("Failed to load course")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	id, ok := courseID(w, r)
	if !ok {
		return
	}

	var dto UpdateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	c, err := h.service.Update(r.Context(), id, userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCourseNotFound):
			config.Error(w, http.StatusNotFound, "course not found", nil)
		case errors.Is(err, ErrNotOwner):
			config.Error(w, http.StatusForbidden, "course does not belong to user", nil)
		default:
			log.WithError(err).Error("Failed to update course")
			config.Error(w, http.StatusInternalServerError, "internal server error", err)
		}
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	id, ok := courseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrCourseNotFound):
			config.Error(w, http.StatusNotFound, "course not found", nil)
		case errors.Is(err, ErrNotOwner):
			config.Error(w, http.StatusForbidden, "course does not belong to user", nil)
		default:
			log.WithError(err).Error("Failed to delete course")
			config.Error(w, http.StatusInternalServerError, "internal server error", err)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "course deleted successfully"})
}

func courseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		config.Error(w, http.StatusBadRequest, "course id required", nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid course id", nil)
		return uuid.Nil, false
	}
	return id, true
}
