// Package response provides standard API response helpers.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/pagination"

	"github.com/gin-gonic/gin"
)

// Response is the standard API response format.
type Response struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Pagination pagination.Info `json:"pagination,omitempty" swaggertype:"object"`
	Error      string          `json:"error,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Paginated sends one page of results with its pagination metadata.
func Paginated[T any](c *gin.Context, page *pagination.Result[T]) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       page.Data,
		Pagination: page.Pagination,
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// NoContent sends a 204 No Content response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// Abort sends an error response and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

var notFound = []error{
	apperrors.ErrUserNotFound,
	apperrors.ErrChurchNotFound,
	apperrors.ErrEventNotFound,
	apperrors.ErrSermonNotFound,
	apperrors.ErrMinistryNotFound,
	apperrors.ErrQuestionNotFound,
	apperrors.ErrMembershipNotFound,
}

var conflict = []error{
	apperrors.ErrUserAlreadyExists,
	apperrors.ErrChurchSlugTaken,
	apperrors.ErrAlreadyMember,
}

var badRequest = []error{
	apperrors.ErrMissingResourceIdentifier,
	apperrors.ErrQueryConstruction,
	apperrors.ErrInvalidRole,
	apperrors.ErrInvalidUploadKind,
}

var unauthorized = []error{
	apperrors.ErrNotAuthenticated,
	apperrors.ErrInvalidToken,
	apperrors.ErrTokenExpired,
	apperrors.ErrInvalidCredentials,
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusOf maps an error to its HTTP status.
func StatusOf(err error) int {
	switch {
	case matches(err, unauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInsufficientPermission), errors.Is(err, apperrors.ErrChurchMismatch):
		return http.StatusForbidden
	case matches(err, badRequest):
		return http.StatusBadRequest
	case matches(err, notFound):
		return http.StatusNotFound
	case matches(err, conflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// FromError sends the response matching err's kind. Unclassified errors are
// logged and reported as a generic internal error.
func FromError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		InternalError(c)
		return
	}
	Error(c, status, err.Error())
}

// AbortWithError is FromError for middleware: it stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		Abort(c, status, "internal server error")
		return
	}
	Abort(c, status, err.Error())
}
