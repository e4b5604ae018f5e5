package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Martinsschnee/pbweb/internal/service"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNoValidEntries:          http.StatusBadRequest,
	service.ErrSelfDeletion:            http.StatusBadRequest,
	service.ErrUsernameTaken:           http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRecordNotFound:          http.StatusNotFound,
	service.ErrUserNotFound:            http.StatusNotFound,
}

func statusFromError(err error) int {
	if _, ok := service.AsRateLimitError(err); ok {
		return http.StatusTooManyRequests
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates a service error into the uniform JSON error body.
// Unexpected errors collapse to a generic 500 message so that internal
// detail never leaks to callers; rate-limit rejections carry a retry
// hint.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	body := models.ErrorResponse{Error: err.Error()}
	if rateLimitErr, ok := service.AsRateLimitError(err); ok {
		body.Error = "Too many failed attempts. Try again later."
		body.RetryAfterSeconds = int(rateLimitErr.RetryAfter.Round(time.Second) / time.Second)
	} else if status == http.StatusInternalServerError {
		body.Error = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, body, status) //nolint:errcheck
}
