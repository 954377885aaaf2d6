package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			config.Error(w, http.StatusConflict, "email already registered", nil)
		case errors.Is(err, ErrInvalidCredentials):
			config.Error(w, http.StatusBadRequest, "name, email and a password of at least 8 characters are required", nil)
		default:
			log.WithError(err).Error("Failed to register user")
			config.Error(w, http.StatusInternalServerError, "internal server error", err)
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	pair, userResp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		log.WithError(err).Error("Login failed")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	setAuthCookies(w, pair)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"user":   userResp,
		"tokens": pair,
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Code == "" {
		config.Error(w, http.StatusBadRequest, "authorization code required", nil)
		return
	}

	pair, userResp, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, "google sign-in failed", nil)
			return
		}
		log.WithError(err).Error("Google login failed")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	setAuthCookies(w, pair)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"user":   userResp,
		"tokens": pair,
	})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		config.Error(w, http.StatusBadRequest, "refresh token required", nil)
		return
	}

	pair, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusUnauthorized, "invalid refresh token", nil)
			return
		}
		log.WithError(err).Error("Token refresh failed")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	setAuthCookies(w, pair)
	config.JSON(w, http.StatusOK, pair)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, "user not found", nil)
			return
		}
		log.WithError(err).Error("Failed to load user")
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func setAuthCookies(w http.ResponseWriter, pair *TokenPair) {
	domain := os.Getenv("COOKIE_DOMAIN")
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    pair.AccessToken,
		Path:     "/",
		Domain:   domain,
		MaxAge:   int(auth.AccessTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		Path:     "/",
		Domain:   domain,
		MaxAge:   int(auth.RefreshTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
