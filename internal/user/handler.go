package user

import (
	"net/http"
	"net/url"

	"quizdesk/internal/apperr"
	"quizdesk/internal/auth"
	"quizdesk/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Register handles the registration form post. Validation and conflict
// failures flash back to the form; success lands on the login page.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "/register", "invalid form submission")
		return
	}

	dto := RegisterDTO{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
		Role:     r.PostFormValue("role"),
	}

	if _, err := h.service.Register(r.Context(), dto); err != nil {
		if apperr.IsValidation(err) || apperr.IsConflict(err) {
			flashRedirect(w, r, "/register", err.Error())
			return
		}
		log.WithError(err).Error("registration failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login?flash="+url.QueryEscape("registration successful, please log in"), http.StatusSeeOther)
}

// Login handles the login form post and issues the session cookie. The
// redirect target depends on the session role.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "/login", "invalid form submission")
		return
	}

	dto := LoginDTO{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	session, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if apperr.IsAuth(err) || apperr.IsAccessDenied(err) {
			flashRedirect(w, r, "/login", err.Error())
			return
		}
		log.WithError(err).Error("login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, session.Token)
	http.Redirect(w, r, session.RedirectPath, http.StatusSeeOther)
}

// GetUser answers the JSON profile of the authenticated user.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if apperr.IsNotFound(err) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.SessionRole(),
		CreatedAt: u.CreatedAt,
	})
}

func flashRedirect(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
