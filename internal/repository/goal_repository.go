package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finadvisor/backend/internal/model"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalRepository persists savings goals. Every read and write is scoped to
// both the goal id and its owner, so a goal belonging to another user is
// indistinguishable from one that does not exist.
type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, name, target_amount, current_amount, target_date, category, description, priority, is_completed, contributions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at`

	goal.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		goal.ID, goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount,
		goal.TargetDate, goal.Category, goal.Description, goal.Priority,
		goal.IsCompleted, goal.Contributions,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)
}

func (r *GoalRepository) GetByOwner(ctx context.Context, id, userID uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &goal, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	return &goal, err
}

func (r *GoalRepository) List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	var goals []model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY priority, target_date`
	err := r.db.SelectContext(ctx, &goals, query, userID)
	return goals, err
}

func (r *GoalRepository) Update(ctx context.Context, goal *model.Goal) error {
	query := `
		UPDATE goals
		SET name = $3, target_amount = $4, current_amount = $5, target_date = $6, category = $7, description = $8, priority = $9, is_completed = $10, contributions = $11, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		goal.ID, goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount,
		goal.TargetDate, goal.Category, goal.Description, goal.Priority,
		goal.IsCompleted, goal.Contributions,
	).Scan(&goal.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGoalNotFound
	}
	return err
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}
