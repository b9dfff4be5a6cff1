package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateQuestions)
	r.Post("/evaluate", h.EvaluateAnswer)
	r.Get("/topics", h.ListTopics)
	return r
}
