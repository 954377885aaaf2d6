package config

import (
	"encoding/json"
	"net/http"
	"os"
)

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("Failed to encode response payload")
	}
}

// Error writes a JSON error body. Detail is only included outside production.
func Error(w http.ResponseWriter, status int, message string, detail error) {
	body := map[string]string{"error": message}
	if detail != nil && os.Getenv("APP_ENV") != "production" {
		body["detail"] = detail.Error()
	}
	JSON(w, status, body)
}
