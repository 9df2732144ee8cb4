package auth_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elseff/articles-api-sub000/internal/auth"
	"github.com/elseff/articles-api-sub000/internal/shared"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMiddlewareMissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Minute, time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})
	handler := auth.Middleware(tm, testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Minute, time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})
	handler := auth.Middleware(tm, testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	req.Header.Set("Authorization", "Token abcdef")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestMiddlewareRejectsRefreshToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Minute, time.Hour)
	refresh, _, err := tm.IssueRefresh(7)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}
	handler := auth.Middleware(tm, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestMiddlewareAttachesPrincipal(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Minute, time.Hour)
	token, err := tm.IssueAccess(7, "alice@example.com", []shared.Role{shared.RoleUser, shared.RoleAdmin})
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	var got shared.Principal
	handler := auth.Middleware(tm, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := shared.PrincipalFromContext(r.Context())
		if !ok {
			t.Fatal("principal missing from context")
		}
		got = principal
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if got.UserID != 7 || got.Email != "alice@example.com" || !got.IsAdmin() {
		t.Fatalf("unexpected principal: %+v", got)
	}
}
