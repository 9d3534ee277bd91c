// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmartin/tennis-stats-service/internal/repository"
	"github.com/lmartin/tennis-stats-service/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
// Details carries the per-field breakdown of a validation failure.
type ErrorPayload struct {
	Error   string               `json:"error"`
	Message string               `json:"message,omitempty"`
	Details []service.FieldError `json:"details,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and
// payload. Classified store errors carry their own status and public message;
// anything unrecognized collapses to a generic 500 so no internal detail
// leaks through the API.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:   "invalid player data",
			Details: service.FieldErrors(err),
		}
	}

	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound, ErrorPayload{
			Error:   "not_found",
			Message: "player not found",
		}
	}

	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Status, ErrorPayload{Error: storeErr.Public}
	}

	return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
