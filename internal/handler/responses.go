package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/logger"
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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never produces
	// a half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Validation failures are 400s, ownership and gating failures are
// 403s, and anything unrecognized falls through to a 500 with a generic body.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPlotNotFound):
		return http.StatusNotFound, ErrMsgPlotNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrAlreadyPlanted):
		return http.StatusConflict, ErrMsgAlreadyPlantedError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrPlotNotOwned):
		return http.StatusForbidden, ErrMsgPlotNotOwnedError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItemError
	case errors.Is(err, domain.ErrItemNotForSale):
		return http.StatusBadRequest, ErrMsgItemNotForSaleError
	case errors.Is(err, domain.ErrNothingToHarvest):
		return http.StatusBadRequest, ErrMsgNothingToHarvestError
	case errors.Is(err, domain.ErrCropNotReady):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientGold):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientSeed):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
