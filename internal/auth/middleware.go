package auth

import (
	"net/http"
	"net/url"

	"quizdesk/internal/config"
)

// AuthMiddleware requires a valid session cookie on API routes. The claims are
// placed on the request context for handlers downstream.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := sessionFromRequest(r)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("rejected unauthenticated API request")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// RequireAnyRole allows the request through only when the session role is one
// of the given roles. Answers 403 on mismatch; meant for API routes.
func RequireAnyRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := GetUserClaimsFromContext(r.Context())
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			config.WithContext(r.Context()).WithField("role", claims.Role).Warn("role not allowed for resource")
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

// RequireRole gates a server-rendered page behind a single role. A missing
// session or a role mismatch always redirects to the login page with a flash
// message; no fallback session is ever granted.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := sessionFromRequest(r)
			if err != nil || claims.UserID == "" {
				redirectToLogin(w, r, "please log in to continue")
				return
			}
			if claims.Role != role {
				config.WithContext(r.Context()).
					WithField("role", claims.Role).
					WithField("required", role).
					Warn("access denied")
				redirectToLogin(w, r, "access denied")
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

func sessionFromRequest(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}
	return ValidateJWT(cookie.Value)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, flash string) {
	http.Redirect(w, r, "/login?error="+url.QueryEscape(flash), http.StatusSeeOther)
}
