package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// writeServiceError maps pipeline error kinds to HTTP status codes and
// machine-readable error codes. Validation and not-found failures are
// deterministic and never retried; upstream failures surface as 502.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var (
		status int
		code   string
	)
	switch {
	case errors.Is(err, services.ErrPlanNotFound):
		status, code = http.StatusNotFound, "plan_not_found"
	case errors.Is(err, services.ErrUnitNotFound):
		status, code = http.StatusNotFound, "unit_not_found"
	case errors.Is(err, apperrors.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrInvalidInput):
		status, code = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, apperrors.ErrUpstream):
		status, code = http.StatusBadGateway, "generation_failed"
	default:
		status, code = http.StatusInternalServerError, "internal_error"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.String("code", code), zap.Error(err))
	}
	if writeErr := ErrorResponse(w, status, code, err.Error()); writeErr != nil {
		logger.Error("Failed to write error response", zap.Error(writeErr))
	}
}
