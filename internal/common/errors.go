package common

import (
	"errors"
	"net/http"
)

// Domain error kinds. Callers wrap them with fmt.Errorf("%w: ...") and test
// with errors.Is; storage errors are passed through unchanged.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrConfiguration    = errors.New("configuration error")
	ErrUnauthenticated  = errors.New("unauthenticated")
)

// HTTPStatus maps an error returned by a service to the response status the
// HTTP layer should use.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
