package handler

import (
	"context"
	"net/http"

	"github.com/finadvisor/backend/internal/logger"
	"github.com/finadvisor/backend/internal/model"
)

// SeederInterface defines the seeding operation the handler depends on.
type SeederInterface interface {
	SeedDemoUsers(ctx context.Context) ([]model.User, error)
}

// SeedHandler resets the user table to the two demo accounts. Only mounted
// when seeding is enabled, never in production.
type SeedHandler struct {
	service SeederInterface
}

func NewSeedHandler(service SeederInterface) *SeedHandler {
	return &SeedHandler{service: service}
}

type seededCredential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedUsers godoc
// @Summary Reset users to the demo accounts
// @Description Deletes all users and recreates the demo accounts
// @Tags seed
// @Produce json
// @Success 201 {object} Response
// @Failure 500 {object} Response
// @Router /seed/users [get]
func (h *SeedHandler) SeedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.SeedDemoUsers(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("seeding users failed", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Success     bool               `json:"success"`
		Message     string             `json:"message"`
		Users       []model.User       `json:"users"`
		Credentials []seededCredential `json:"credentials"`
	}{
		Success: true,
		Message: "Demo users created",
		Users:   users,
		Credentials: []seededCredential{
			{Email: "user@example.com", Password: "password123"},
			{Email: "admin@example.com", Password: "admin123"},
		},
	})
}
