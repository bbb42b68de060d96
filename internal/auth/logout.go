package auth

import (
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Logout clears the session cookie unconditionally and sends the client back
// to the login page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
