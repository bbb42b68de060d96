package result

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListResults)
	r.Post("/", h.RecordResult)
	return r
}
