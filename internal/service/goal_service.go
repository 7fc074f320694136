package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finadvisor/backend/internal/apperror"
	"github.com/finadvisor/backend/internal/model"
)

// GoalRepositoryInterface defines the contract for goal data access.
type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *model.Goal) error
	GetByOwner(ctx context.Context, id, userID uuid.UUID) (*model.Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// GoalService handles savings-goal business logic: partial-merge updates,
// progress tracking and one-way auto-completion.
type GoalService struct {
	repo GoalRepositoryInterface
}

func NewGoalService(repo GoalRepositoryInterface) *GoalService {
	return &GoalService{repo: repo}
}

// UpdateGoalInput carries a partial goal update. Zero-valued scalar fields
// keep the stored value; pointer fields overwrite only when present.
// Contributions, when present, replace the stored sequence wholesale.
type UpdateGoalInput struct {
	Name          string               `json:"name"`
	TargetAmount  decimal.Decimal      `json:"targetAmount"`
	CurrentAmount *decimal.Decimal     `json:"currentAmount"`
	TargetDate    time.Time            `json:"targetDate"`
	Category      model.GoalCategory   `json:"category"`
	Description   *string              `json:"description"`
	Priority      int                  `json:"priority"`
	IsCompleted   *bool                `json:"isCompleted"`
	Contributions *model.Contributions `json:"contributions"`
}

// Create validates and persists a new goal for the user. A goal created at
// or beyond its target is completed immediately.
func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, goal *model.Goal) error {
	goal.ApplyDefaults()
	if err := goal.Validate(); err != nil {
		return apperror.BadRequest(err.Error())
	}

	goal.UserID = userID
	applyCompletion(goal)

	if err := s.repo.Create(ctx, goal); err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}
	return nil
}

// Get returns the goal with the given id when the user owns it. Missing and
// foreign goals are indistinguishable.
func (s *GoalService) Get(ctx context.Context, userID, id uuid.UUID) (*model.Goal, error) {
	goal, err := s.repo.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// List returns every goal owned by the user, never nil.
func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	goals, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, nil
}

// Update merges the input into the stored goal and persists the result.
func (s *GoalService) Update(ctx context.Context, userID, id uuid.UUID, input UpdateGoalInput) (*model.Goal, error) {
	goal, err := s.repo.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		goal.Name = input.Name
	}
	if !input.TargetAmount.IsZero() {
		goal.TargetAmount = input.TargetAmount
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if !input.TargetDate.IsZero() {
		goal.TargetDate = input.TargetDate
	}
	if input.Category != "" {
		goal.Category = input.Category
	}
	if input.Description != nil {
		goal.Description = input.Description
	}
	if input.Priority != 0 {
		goal.Priority = input.Priority
	}
	if input.IsCompleted != nil {
		goal.IsCompleted = *input.IsCompleted
	}
	if input.Contributions != nil {
		goal.Contributions = *input.Contributions
	}

	if err := goal.Validate(); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	applyCompletion(goal)

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress sets the goal's current amount. Reaching the target marks
// the goal completed; completion is never reverted here, even if the amount
// later drops below the target.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, id uuid.UUID, currentAmount *decimal.Decimal) (*model.Goal, error) {
	if currentAmount == nil {
		return nil, apperror.BadRequest("Current amount is required")
	}
	if currentAmount.IsNegative() {
		return nil, apperror.BadRequest("current amount must not be negative")
	}

	goal, err := s.repo.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = *currentAmount
	applyCompletion(goal)

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes the goal when the user owns it.
func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

func applyCompletion(goal *model.Goal) {
	if !goal.IsCompleted && goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.IsCompleted = true
	}
}
