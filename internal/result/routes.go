package result

import "github.com/go-chi/chi/v5"

// Routes registers onto an existing router because the quiz namespace is
// shared with the generation endpoint.
func Routes(r chi.Router, h *Handler) {
	r.Post("/save-result", h.SaveResult)
	r.Get("/history", h.History)
	r.Get("/statistics", h.Statistics)
}
