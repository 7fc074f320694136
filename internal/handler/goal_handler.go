package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/service"
)

// GoalServiceInterface defines the goal operations the handler depends on.
type GoalServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, goal *model.Goal) error
	Get(ctx context.Context, userID, id uuid.UUID) (*model.Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	Update(ctx context.Context, userID, id uuid.UUID, input service.UpdateGoalInput) (*model.Goal, error)
	UpdateProgress(ctx context.Context, userID, id uuid.UUID, currentAmount *decimal.Decimal) (*model.Goal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type GoalHandler struct {
	service GoalServiceInterface
}

func NewGoalHandler(service GoalServiceInterface) *GoalHandler {
	return &GoalHandler{service: service}
}

// List godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} MessageResponse
// @Failure 500 {object} Response
// @Router /goals [get]
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	goals, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, "Goal")
		return
	}

	respondData(w, http.StatusOK, goals)
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.Goal true "Goal data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} MessageResponse
// @Failure 500 {object} Response
// @Router /goals [post]
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var goal model.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), userID, &goal); err != nil {
		handleError(w, r, err, "Goal")
		return
	}

	respondData(w, http.StatusCreated, &goal)
}

// Get godoc
// @Summary Get a goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} Response
// @Router /goals/{id} [get]
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid id")
		return
	}

	goal, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err, "Goal")
		return
	}

	respondData(w, http.StatusOK, goal)
}

// Update godoc
// @Summary Update a goal
// @Description Partial update; omitted fields keep their stored values
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param input body service.UpdateGoalInput true "Fields to update"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} Response
// @Router /goals/{id} [put]
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var input service.UpdateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.Update(r.Context(), userID, id, input)
	if err != nil {
		handleError(w, r, err, "Goal")
		return
	}

	respondData(w, http.StatusOK, goal)
}

type updateProgressInput struct {
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
}

// UpdateProgress godoc
// @Summary Update goal progress
// @Description Set the current amount; reaching the target completes the goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param input body updateProgressInput true "New current amount"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} Response
// @Router /goals/{id}/progress [patch]
func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var input updateProgressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.UpdateProgress(r.Context(), userID, id, input.CurrentAmount)
	if err != nil {
		handleError(w, r, err, "Goal")
		return
	}

	respondData(w, http.StatusOK, goal)
}

// Delete godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} Response
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, err, "Goal")
		return
	}

	respondSuccessMessage(w, http.StatusOK, "Goal deleted")
}

// Routes mounts the goal surface on a chi router.
func (h *GoalHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/progress", h.UpdateProgress)
	r.Delete("/{id}", h.Delete)
}
