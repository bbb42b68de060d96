package content

import (
	"github.com/go-chi/chi/v5"

	"quizdesk/internal/auth"
)

// SubjectRoutes serves /api/subjects. Reads are open to any session; writes
// require a curator role.
func SubjectRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListSubjects)
	r.Get("/{id}", h.GetSubject)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAnyRole("admin", "staff"))
		r.Post("/", h.CreateSubject)
		r.Put("/{id}", h.UpdateSubject)
		r.Delete("/{id}", h.DeleteSubject)
	})
	return r
}

func ChapterRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetChapter)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAnyRole("admin", "staff"))
		r.Post("/", h.CreateChapter)
		r.Put("/{id}", h.UpdateChapter)
		r.Delete("/{id}", h.DeleteChapter)
	})
	return r
}

func QuizRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetQuiz)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAnyRole("admin", "staff"))
		r.Post("/", h.CreateQuiz)
		r.Put("/{id}", h.UpdateQuiz)
		r.Delete("/{id}", h.DeleteQuiz)
	})
	return r
}

func QuestionRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetQuestion)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAnyRole("admin", "staff"))
		r.Post("/", h.CreateQuestion)
		r.Put("/{id}", h.UpdateQuestion)
		r.Delete("/{id}", h.DeleteQuestion)
	})
	return r
}
