package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"quizdesk/internal/auth"
	"quizdesk/internal/content"
	"quizdesk/internal/middlewares"
	"quizdesk/internal/result"
	"quizdesk/internal/user"
	"quizdesk/internal/web"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	ContentHandler *content.Handler
	ResultHandler  *result.Handler
	WebHandler     *web.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	// Server-rendered pages.
	r.Get("/", cfg.WebHandler.Index)
	r.Get("/login", cfg.WebHandler.LoginPage)
	r.Post("/login", cfg.UserHandler.Login)
	r.Get("/register", cfg.WebHandler.RegisterPage)
	r.Post("/register", cfg.UserHandler.Register)
	r.Get("/logout", auth.NewHandler().Logout)

	r.With(auth.RequireRole(user.RoleAdmin)).Get("/admin-dashboard", cfg.WebHandler.AdminDashboard)
	r.With(auth.RequireRole(user.RoleStaff)).Get("/staff-dashboard", cfg.WebHandler.StaffDashboard)
	r.With(auth.RequireRole(user.RoleStudent)).Get("/student-dashboard", cfg.WebHandler.StudentDashboard)

	// JSON API, session required throughout.
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/subjects", content.SubjectRoutes(cfg.ContentHandler))
		r.Mount("/chapters", content.ChapterRoutes(cfg.ContentHandler))
		r.Mount("/quizzes", content.QuizRoutes(cfg.ContentHandler))
		r.Mount("/questions", content.QuestionRoutes(cfg.ContentHandler))
		r.Mount("/results", result.Routes(cfg.ResultHandler))
	})

	return r
}
