package api

import (
	"errors"
	"net/http"

	"github.com/tbouvier/leitner-api/internal/domain"
	"github.com/tbouvier/leitner-api/internal/service/auth"
	"github.com/tbouvier/leitner-api/internal/service/card"
	"github.com/tbouvier/leitner-api/internal/service/quiz"
	"github.com/tbouvier/leitner-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// kinds to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, card.ErrCardNotFound),
		errors.Is(err, store.ErrCardNotFound):
		return http.StatusNotFound

	// The daily gate is a state conflict, distinct from validation failures
	case errors.Is(err, quiz.ErrQuizAlreadyCompleted):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, auth.ErrEmptyCredentials):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, card.ErrCardNotFound),
		errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, quiz.ErrQuizAlreadyCompleted):
		return "Quiz already completed today"

	case errors.Is(err, auth.ErrEmptyCredentials):
		return "Username and password are required"

	case errors.Is(err, domain.ErrInvalidCategory):
		return "Unknown category"

	case errors.Is(err, domain.ErrValidation):
		// Validation messages are written for clients; pass them through.
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return vErr.Error()
		}
		return "Validation failed"

	default:
		return "An unexpected error occurred"
	}
}
