package generator

import "github.com/go-chi/chi/v5"

// Routes registers onto an existing router because the quiz namespace is
// shared with the result endpoints.
func Routes(r chi.Router, h *Handler) {
	r.Post("/generate", h.GenerateQuiz)
}
