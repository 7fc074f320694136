package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/finadvisor/backend/internal/logger"
	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/repository"
	"github.com/finadvisor/backend/internal/service"
)

// UserServiceInterface defines the auth operations the handler depends on.
type UserServiceInterface interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.AuthResponse, error)
	Login(ctx context.Context, input service.LoginInput) (*service.AuthResponse, error)
	Profile(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type AuthHandler struct {
	service UserServiceInterface
}

func NewAuthHandler(service UserServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.RegisterInput true "Registration data"
// @Success 201 {object} service.AuthResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondMessage(w, http.StatusBadRequest, "Email already in use")
		case errors.Is(err, service.ErrMissingFields):
			respondMessage(w, http.StatusBadRequest, "Please provide email and password")
		default:
			logger.FromContext(r.Context()).Error("registration failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.LoginInput true "Credentials"
// @Success 200 {object} service.AuthResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondMessage(w, http.StatusBadRequest, "Please provide email and password")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			logger.FromContext(r.Context()).Error("login failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Profile godoc
// @Summary Get the current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /users/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondFailure(w, http.StatusNotFound, "User not found")
			return
		}
		handleError(w, r, err, "User")
		return
	}

	// like the other auth responses, the profile is returned bare rather
	// than wrapped in the uniform envelope
	respondJSON(w, http.StatusOK, user)
}
