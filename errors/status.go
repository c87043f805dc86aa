package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPStatus maps a service error to the status returned by the REST API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrMissingToken), stderrors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrInvalidLimit), stderrors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrNotMember):
		return http.StatusForbidden
	case stderrors.Is(err, ErrQueueUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
