package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/llm"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var dto SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.SendMessage(r.Context(), userID, dto)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, ErrEmptyMessage):
			config.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.As(err, &upstream):
			log.WithError(err).Error("Assistant upstream call failed")
			config.Error(w, http.StatusInternalServerError, "assistant is unavailable", err)
		default:
			log.WithError(err).Error("Failed to handle chat message")
			config.Error(w, http.StatusInternalServerError, "internal server error", err)
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	history, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to load chat history")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, history)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	if err := h.service.ClearHistory(r.Context(), userID); err != nil {
		log.WithError(err).Error("Failed to clear chat history")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "chat history cleared"})
}
