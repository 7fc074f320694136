package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finadvisor/backend/internal/apperror"
	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/repository"
)

// ErrNotOwned is returned when a record exists but belongs to another user.
var ErrNotOwned = errors.New("record not owned by user")

// CrudStoreInterface is the persistence contract for a uniform record type.
type CrudStoreInterface[T any, PT interface {
	model.Entity
	*T
}] interface {
	Create(ctx context.Context, entity PT) error
	List(ctx context.Context, userID uuid.UUID) ([]T, error)
	Update(ctx context.Context, entity PT) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CrudService implements the shared create/list/update/delete semantics for
// incomes, expenses, assets and liabilities.
type CrudService[T any, PT interface {
	model.Entity
	*T
}] struct {
	store CrudStoreInterface[T, PT]
}

func NewCrudService[T any, PT interface {
	model.Entity
	*T
}](store CrudStoreInterface[T, PT]) *CrudService[T, PT] {
	return &CrudService[T, PT]{store: store}
}

// Create validates the record, stamps the owner and persists it. Validation
// failures surface as 400s with the validation message.
func (s *CrudService[T, PT]) Create(ctx context.Context, userID uuid.UUID, entity PT) error {
	entity.ApplyDefaults()
	if err := entity.Validate(); err != nil {
		return apperror.BadRequest(err.Error())
	}

	entity.Meta().UserID = userID
	if err := s.store.Create(ctx, entity); err != nil {
		return fmt.Errorf("creating record: %w", err)
	}
	return nil
}

// List returns every record owned by the user, never nil.
func (s *CrudService[T, PT]) List(ctx context.Context, userID uuid.UUID) ([]T, error) {
	items, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Update replaces the record with the given id. The write is a single
// statement conditioned on both id and owner; when it matches nothing, a
// follow-up existence probe distinguishes a missing record
// (repository.ErrRecordNotFound) from a foreign one (ErrNotOwned).
func (s *CrudService[T, PT]) Update(ctx context.Context, userID, id uuid.UUID, entity PT) error {
	entity.ApplyDefaults()
	if err := entity.Validate(); err != nil {
		return apperror.BadRequest(err.Error())
	}

	meta := entity.Meta()
	meta.ID = id
	meta.UserID = userID

	err := s.store.Update(ctx, entity)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return s.classifyMiss(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("updating record %s: %w", id, err)
	}
	return nil
}

// Delete removes the record with the given id, with the same miss semantics
// as Update.
func (s *CrudService[T, PT]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.store.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return s.classifyMiss(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	return nil
}

func (s *CrudService[T, PT]) classifyMiss(ctx context.Context, id uuid.UUID) error {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("checking record %s: %w", id, err)
	}
	if exists {
		return ErrNotOwned
	}
	return repository.ErrRecordNotFound
}
