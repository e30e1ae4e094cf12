// Package common holds the HTTP response envelope and the domain-error to
// status-code mapping shared by all handlers.
package common

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domerr "github.com/clubarena/rosterhub/internal/domain/errors"
)

// FieldError is one field-level violation as rendered on the wire.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Response is the uniform envelope for every endpoint. Exactly one of Data
// and Errors is populated; Warnings may accompany a success.
type Response struct {
	Success   bool         `json:"success"`
	Data      any          `json:"data,omitempty"`
	Message   string       `json:"message,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
	Warnings  []string     `json:"warnings,omitempty"`
	RequestID string       `json:"requestId,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func newResponse(c *gin.Context, success bool) Response {
	return Response{
		Success:   success,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().UTC(),
	}
}

// RespondSuccess writes a success envelope with the given payload.
func RespondSuccess(c *gin.Context, status int, data any) {
	resp := newResponse(c, true)
	resp.Data = data
	c.JSON(status, resp)
}

// RespondSuccessWithWarnings writes a success envelope carrying non-blocking
// warnings alongside the payload.
func RespondSuccessWithWarnings(c *gin.Context, status int, data any, warnings []string) {
	resp := newResponse(c, true)
	resp.Data = data
	resp.Warnings = warnings
	c.JSON(status, resp)
}

// RespondError writes a failure envelope with a top-level message and
// optional field violations.
func RespondError(c *gin.Context, status int, message string, fieldErrors []FieldError) {
	resp := newResponse(c, false)
	resp.Message = message
	resp.Errors = fieldErrors
	c.JSON(status, resp)
}

func toFieldErrors(batch domerr.ValidationErrors) []FieldError {
	out := make([]FieldError, len(batch))
	for i, v := range batch {
		out[i] = FieldError{Field: v.Field, Message: v.Message, Value: v.RejectedValue}
	}
	return out
}

// HandleDomainError maps a domain error onto the HTTP envelope:
// validation → 400, conflict → 409, not found → 404, lifecycle guard → 422.
// Anything else is a 500 with a generic message; the cause goes to the log
// only, never to the client.
func HandleDomainError(c *gin.Context, err error) {
	if batch, ok := domerr.AsValidationErrors(err); ok {
		RespondError(c, http.StatusBadRequest, "Validation failed", toFieldErrors(batch))
		return
	}
	if domerr.IsConflict(err) {
		RespondError(c, http.StatusConflict, err.Error(), nil)
		return
	}
	if domerr.IsNotFound(err) {
		RespondError(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	if domerr.IsStateTransition(err) {
		RespondError(c, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"error", err,
		"path", c.Request.URL.Path,
		"request_id", c.GetString("request_id"),
	)
	RespondError(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
}
