package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/elseff/articles-api-sub000/internal/platform/httpx"
	"github.com/elseff/articles-api-sub000/internal/shared"
)

// Middleware authenticates bearer tokens and attaches the principal to the
// request context. Routes behind it always see an authenticated principal;
// everything else is rejected with 401 before reaching a handler.
func Middleware(tokens *TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "missing authorization header")
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid authorization header")
				return
			}
			claims, err := tokens.ParseAccess(parts[1])
			if err != nil {
				logger.Debug("token parse failed", slog.Any("error", err))
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
				return
			}
			principal := shared.Principal{
				UserID: userID,
				Email:  claims.Email,
				Roles:  shared.ParseRoles(claims.Roles),
			}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithPrincipal(r.Context(), principal)))
		})
	}
}
