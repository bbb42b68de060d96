package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"quizdesk/internal/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(t *testing.T, target, role string) *http.Request {
	t.Helper()
	token, err := auth.GenerateJWT("user-1", role, "alice", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	return req
}

func TestRequireRole(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	guard := auth.RequireRole("staff")(okHandler())

	t.Run("MatchingRoleAllowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, requestWithSession(t, "/staff-dashboard", "staff"))

		if rec.Code != http.StatusOK {
			t.Errorf("staff session should reach the staff dashboard, got status %d", rec.Code)
		}
	})

	t.Run("RoleMismatchDenied", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, requestWithSession(t, "/staff-dashboard", "student"))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("student session should be redirected, got status %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
			t.Errorf("denied request should land on the login page, got %q", loc)
		}
	})

	t.Run("NoSessionDenied", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/staff-dashboard", nil))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("anonymous request should be redirected, got status %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
			t.Errorf("denied request should land on the login page, got %q", loc)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	protected := auth.AuthMiddleware(okHandler())

	t.Run("NoCookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("request without a session cookie should get 401, got %d", rec.Code)
		}
	})

	t.Run("ValidCookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, requestWithSession(t, "/api/subjects", "student"))

		if rec.Code != http.StatusOK {
			t.Errorf("request with a valid session should pass, got %d", rec.Code)
		}
	})
}

func TestRequireAnyRole(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	guard := auth.AuthMiddleware(auth.RequireAnyRole("admin", "staff")(okHandler()))

	t.Run("StaffAllowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, requestWithSession(t, "/api/subjects", "staff"))

		if rec.Code != http.StatusOK {
			t.Errorf("staff should be allowed, got %d", rec.Code)
		}
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, requestWithSession(t, "/api/subjects", "student"))

		if rec.Code != http.StatusForbidden {
			t.Errorf("student should get 403 on a curator route, got %d", rec.Code)
		}
	})
}
