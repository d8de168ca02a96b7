package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	// Notifications raised before the failure, if any
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

// respondJSON encodes into a pooled buffer first so an encoding failure
// never leaves a half-written body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
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

// respondServiceError logs err and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error, notes []domain.Notification) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	respondJSON(w, status, ErrorResponse{Error: msg, Notifications: notes})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNoCandidates):
		return http.StatusUnprocessableEntity, ErrMsgNoCandidatesError
	case errors.Is(err, domain.ErrNoCatalogSource):
		return http.StatusServiceUnavailable, ErrMsgNoCatalogError
	case errors.Is(err, domain.ErrContainerNotFound):
		return http.StatusNotFound, ErrMsgContainerNotFound
	case errors.Is(err, domain.ErrSceneNotFound):
		return http.StatusNotFound, ErrMsgSceneNotFound
	case errors.Is(err, domain.ErrCompendiumNotFound):
		return http.StatusNotFound, ErrMsgCompendiumNotFound
	case errors.Is(err, domain.ErrCatalogItemNotFound):
		return http.StatusNotFound, ErrMsgCatalogItemNotFound
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
