package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finadvisor/backend/internal/model"
)

// CrudServiceInterface defines the shared record operations for a uniform
// entity type.
type CrudServiceInterface[T any, PT interface {
	model.Entity
	*T
}] interface {
	Create(ctx context.Context, userID uuid.UUID, entity PT) error
	List(ctx context.Context, userID uuid.UUID) ([]T, error)
	Update(ctx context.Context, userID, id uuid.UUID, entity PT) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CrudHandler serves the uniform list/create/update/delete surface for
// incomes, expenses, assets and liabilities. kind names the record type in
// response messages.
type CrudHandler[T any, PT interface {
	model.Entity
	*T
}] struct {
	service CrudServiceInterface[T, PT]
	kind    string
}

func NewCrudHandler[T any, PT interface {
	model.Entity
	*T
}](service CrudServiceInterface[T, PT], kind string) *CrudHandler[T, PT] {
	return &CrudHandler[T, PT]{service: service, kind: kind}
}

func (h *CrudHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, h.kind)
		return
	}

	respondData(w, http.StatusOK, items)
}

func (h *CrudHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), userID, PT(&entity)); err != nil {
		handleError(w, r, err, h.kind)
		return
	}

	respondData(w, http.StatusCreated, &entity)
}

func (h *CrudHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), userID, id, PT(&entity)); err != nil {
		handleError(w, r, err, h.kind)
		return
	}

	respondData(w, http.StatusOK, &entity)
}

func (h *CrudHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, err, h.kind)
		return
	}

	respondSuccessMessage(w, http.StatusOK, h.kind+" deleted")
}

// Routes mounts the uniform surface on a chi router.
func (h *CrudHandler[T, PT]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
