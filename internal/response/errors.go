package response

import (
	"errors"
	"net/http"

	"github.com/stemsi/gradebook/internal/model"
)

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation      ErrCode = "VALIDATION_ERROR"
	ErrInvalidArgument ErrCode = "INVALID_ARGUMENT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrRouteNotFound ErrCode = "ROUTE_NOT_FOUND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidArgument:
		return "Unknown dataset size. Use small, medium or large."
	case ErrNotFound:
		return "The requested record, dataset or exam history does not exist."
	case ErrRouteNotFound:
		return "No such endpoint."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}

// FromError maps a service error onto an HTTP status and error code.
func FromError(err error) (int, ErrCode) {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest, ErrInvalidArgument
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, ErrNotFound
	default:
		return http.StatusInternalServerError, ErrInternal
	}
}
