package httpx

import (
	"errors"
	"net/http"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// shared.ErrNoPrincipal deliberately falls through to 500: a guarded
// operation ran without an authenticated principal, which is an internal
// fault, not a client error.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, shared.ErrDuplicateEmail):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
