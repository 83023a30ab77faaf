package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type fakeIssuer struct {
	token     string
	expiresAt time.Time
	err       error
}

func (f fakeIssuer) Issue() (string, time.Time, error) { return f.token, f.expiresAt, f.err }

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/token", handler.IssueToken)
	return r
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func TestAuthHandler_IssueToken(t *testing.T) {
	hash := hashPassword(t, "correct horse")
	expiresAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	issuer := fakeIssuer{token: "signed.jwt.token", expiresAt: expiresAt}

	t.Run("returns 503 when no password is configured", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler("", issuer, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/token", `{"password":"anything"}`)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "AUTH_NOT_CONFIGURED")
	})

	t.Run("returns 400 without a password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(hash, issuer, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/token", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 on a wrong password", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(hash, issuer, audit))

		rec := doRequest(r, "POST", "/auth/token", `{"password":"battery staple"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
		if !audit.logged("LOGIN_FAILED") {
			t.Error("expected LOGIN_FAILED to be audited")
		}
	})

	t.Run("returns a bearer token", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(hash, issuer, audit))

		rec := doRequest(r, "POST", "/auth/token", `{"password":"correct horse"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["access_token"] != "signed.jwt.token" || result["token_type"] != "Bearer" {
			t.Errorf("unexpected response %v", result)
		}
		if result["expires_at"] != "2026-10-19T12:00:00Z" {
			t.Errorf("unexpected expiry %v", result["expires_at"])
		}
		if !audit.logged("LOGIN") {
			t.Error("expected LOGIN to be audited")
		}
	})

	t.Run("returns 500 when signing fails", func(t *testing.T) {
		failing := fakeIssuer{err: errors.New("no key")}
		r := setupAuthRouter(NewAuthHandler(hash, failing, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/token", `{"password":"correct horse"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
