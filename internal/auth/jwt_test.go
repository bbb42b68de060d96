package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quizdesk/internal/auth"
)

const testSecret = "a-long-and-secure-secret-for-tests-only"
const testUserID = "user-123"
const testRole = "student"
const testName = "alice"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should have panicked with an empty JWT_SECRET, but did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, testName, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. want: %s, got: %s", testRole, claims.Role)
		}
		if claims.UserName != testName {
			t.Errorf("wrong UserName. want: %s, got: %s", testName, claims.UserName)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, testName, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should have failed on an expired token, but passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. want: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, testName, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr + "x")
		if err == nil {
			t.Fatal("ValidateJWT should have failed on a tampered token, but passed.")
		}
	})
}
