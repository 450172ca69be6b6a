package v1

import (
	"errors"
	"net/http"

	"github.com/timeaway/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"you only have 2 medical leave days left"`
}

// Authentication errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errPasswordMismatch   = errors.New("the password and its confirmation do not match")
	errMissingToken       = errors.New("a bearer token is required for this endpoint")
	errInvalidToken       = errors.New("the bearer token is invalid or expired")
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrAccountNotFound),
		errors.Is(err, models.ErrApplicationNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, errInvalidCredentials),
		errors.Is(err, errMissingToken),
		errors.Is(err, errInvalidToken):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}
