package httpx

import (
	"errors"
	"net/http"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// ErrValidation marks request payloads that failed validation.
var ErrValidation = errors.New("validation failed")

// RespondError maps domain errors to HTTP responses using RFC7807.
//
// Expired and forged tokens both map to 401, but the detail string differs
// so a client holding a refresh token can tell "try refreshing" apart from
// "re-authenticate from scratch". Error payloads never carry token or
// password material.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrTokenExpired):
		Problem(w, http.StatusUnauthorized, "Unauthorized", "token expired")
	case errors.Is(err, shared.ErrUnauthenticated),
		errors.Is(err, shared.ErrTokenInvalid),
		errors.Is(err, shared.ErrTokenRevoked),
		errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
	case errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", "you are not allowed")
	case errors.Is(err, shared.ErrDuplicate):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
