package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/finadvisor/backend/internal/apperror"
	"github.com/finadvisor/backend/internal/logger"
	"github.com/finadvisor/backend/internal/repository"
	"github.com/finadvisor/backend/internal/service"
)

// Response is the uniform envelope for every non-auth endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// MessageResponse is the bespoke body used by the auth endpoints on failure.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondData writes a success envelope carrying data.
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, Response{Success: true, Data: data})
}

// respondSuccessMessage writes a success envelope carrying only a message.
func respondSuccessMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: true, Message: message})
}

// respondFailure writes a failure envelope.
func respondFailure(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Message: message})
}

// respondMessage writes the bespoke auth-endpoint failure body.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

// handleError maps service and repository errors onto the uniform envelope.
// kind names the record type for not-found messages ("Income", "Goal", ...).
func handleError(w http.ResponseWriter, r *http.Request, err error, kind string) {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound), errors.Is(err, repository.ErrGoalNotFound):
		respondFailure(w, http.StatusNotFound, kind+" not found")
	case errors.Is(err, service.ErrNotOwned):
		respondFailure(w, http.StatusUnauthorized, "Not authorized")
	default:
		status := apperror.GetStatusCode(err)
		message := apperror.GetMessage(err)
		if status == http.StatusInternalServerError {
			logger.FromContext(r.Context()).Error("request failed", "error", err)
			message = "Server error"
		}
		respondFailure(w, status, message)
	}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service liveness
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health-check [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Success   bool      `json:"success"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}{
		Success:   true,
		Message:   "API is running",
		Timestamp: time.Now().UTC(),
	})
}
