package web

import (
	"embed"
	"html/template"
	"net/http"

	"quizdesk/internal/auth"
	"quizdesk/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	templates *template.Template
}

func NewHandler() *Handler {
	return &Handler{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

type pageData struct {
	Title    string
	Error    string
	Flash    string
	UserName string
	Role     string
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	data.Error = r.URL.Query().Get("error")
	data.Flash = r.URL.Query().Get("flash")
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		data.UserName = claims.UserName
		data.Role = claims.Role
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("failed to render template")
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", pageData{Title: "QuizDesk"})
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", pageData{Title: "Log in"})
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", pageData{Title: "Register"})
}

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_dashboard.html", pageData{Title: "Admin dashboard"})
}

func (h *Handler) StaffDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "staff_dashboard.html", pageData{Title: "Staff dashboard"})
}

func (h *Handler) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "student_dashboard.html", pageData{Title: "Student dashboard"})
}
