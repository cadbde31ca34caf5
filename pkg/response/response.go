// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform: every body,
// success or failure, is an Envelope.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/storefront-catalog-service/internal/repository"
	"github.com/maxviazov/storefront-catalog-service/internal/service"
)

// ErrTooManyRequests is returned by the rate limiter middleware.
var ErrTooManyRequests = errors.New("too many requests")

// ErrorPayload is the errors member of a failed envelope.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Extend here as new domain error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found", Message: "resource not found"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: "already_exists", Message: "resource already exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict", Message: "request conflicts with current state"}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, ErrorPayload{Error: "rate_limited", Message: "too many requests, slow down"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error", Message: "internal server error"}
	}
}

// WriteError writes a failed envelope and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, FailureEmpty(payload.Message, payload))
}

// WriteData writes data wrapped in a successful envelope.
func WriteData[T any](c *gin.Context, status int, data T, message ...string) {
	c.JSON(status, Success(data, message...))
}
