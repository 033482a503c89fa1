package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", statusCode)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequests    = "Too many requests. Please try again later."
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgRequestCanceled    = "Request canceled"

	// Wish messages
	ErrMsgPlayerIDRequiredError  = "player_id is required"
	ErrMsgInvalidTimesError      = "times must be 1 or 10"
	ErrMsgBannerNotFoundError    = "Banner not found"
	ErrMsgBannerInactiveError    = "Banner is not active"
	ErrMsgInvalidBannerTypeError = "banner_type must be standard, character or weapon"
	ErrMsgInvalidWishTargetError = "Item is not a featured 5-star of this banner"
	ErrMsgEpitomizedDisabledErr  = "Only weapon banners support a wish target"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Banner configuration and storage failures stay opaque to the caller.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrPlayerIDRequired):
		return http.StatusBadRequest, ErrMsgPlayerIDRequiredError
	case errors.Is(err, domain.ErrInvalidTimes):
		return http.StatusBadRequest, ErrMsgInvalidTimesError
	case errors.Is(err, domain.ErrBannerNotFound):
		return http.StatusNotFound, ErrMsgBannerNotFoundError
	case errors.Is(err, domain.ErrBannerInactive):
		return http.StatusConflict, ErrMsgBannerInactiveError
	case errors.Is(err, domain.ErrInvalidBannerType):
		return http.StatusBadRequest, ErrMsgInvalidBannerTypeError
	case errors.Is(err, domain.ErrInvalidWishTarget):
		return http.StatusBadRequest, ErrMsgInvalidWishTargetError
	case errors.Is(err, domain.ErrEpitomizedDisabled):
		return http.StatusBadRequest, ErrMsgEpitomizedDisabledErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrIllegalArgument):
		// A banner definition that passed loading but cannot be drawn from
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrMsgRequestCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
