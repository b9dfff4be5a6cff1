package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.SaveProgress)
	r.Get("/", h.ListProgress)
	r.Get("/stats", h.GetStats)
	r.Get("/{id}", h.GetSession)
	return r
}
