package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finadvisor/backend/internal/model"
)

// ErrRecordNotFound is returned when no row matches the id (or the id plus
// owner) a query was scoped to.
var ErrRecordNotFound = errors.New("record not found")

// Descriptor names a table and its entity-specific columns. The id, user_id
// and timestamp columns are managed by the repository itself.
type Descriptor struct {
	Table   string
	Columns []string
}

// CrudRepository implements owner-scoped persistence for any owned entity.
// Writes are single conditional statements keyed by id and owner, so a
// mismatched owner can never modify another user's row.
type CrudRepository[T any, PT interface {
	model.Entity
	*T
}] struct {
	db          *sqlx.DB
	desc        Descriptor
	insertQuery string
	updateQuery string
}

func NewCrudRepository[T any, PT interface {
	model.Entity
	*T
}](db *sqlx.DB, desc Descriptor) *CrudRepository[T, PT] {
	cols := append([]string{"id", "user_id"}, desc.Columns...)
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		placeholders[i] = ":" + c
	}

	sets := make([]string, len(desc.Columns))
	for i, c := range desc.Columns {
		sets[i] = fmt.Sprintf("%s = :%s", c, c)
	}

	return &CrudRepository[T, PT]{
		db:   db,
		desc: desc,
		insertQuery: fmt.Sprintf(`
			INSERT INTO %s (%s, created_at, updated_at)
			VALUES (%s, NOW(), NOW())
			RETURNING created_at, updated_at`,
			desc.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", ")),
		updateQuery: fmt.Sprintf(`
			UPDATE %s
			SET %s, updated_at = NOW()
			WHERE id = :id AND user_id = :user_id
			RETURNING created_at, updated_at`,
			desc.Table, strings.Join(sets, ", ")),
	}
}

func (r *CrudRepository[T, PT]) Create(ctx context.Context, entity PT) error {
	entity.Meta().ID = uuid.New()

	rows, err := r.db.NamedQueryContext(ctx, r.insertQuery, entity)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return sql.ErrNoRows
	}
	meta := entity.Meta()
	if err := rows.Scan(&meta.CreatedAt, &meta.UpdatedAt); err != nil {
		return err
	}
	return rows.Err()
}

func (r *CrudRepository[T, PT]) List(ctx context.Context, userID uuid.UUID) ([]T, error) {
	var items []T
	query := fmt.Sprintf(`SELECT * FROM %s WHERE user_id = $1 ORDER BY created_at DESC`, r.desc.Table)
	err := r.db.SelectContext(ctx, &items, query, userID)
	return items, err
}

// Update replaces every entity column of the row matching both id and owner,
// scanning the stored timestamps back so the caller holds the persisted row.
// Returns ErrRecordNotFound when no such row exists; callers that need to
// distinguish a missing row from a foreign one should follow up with Exists.
func (r *CrudRepository[T, PT]) Update(ctx context.Context, entity PT) error {
	rows, err := r.db.NamedQueryContext(ctx, r.updateQuery, entity)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return ErrRecordNotFound
	}
	meta := entity.Meta()
	if err := rows.Scan(&meta.CreatedAt, &meta.UpdatedAt); err != nil {
		return err
	}
	return rows.Err()
}

func (r *CrudRepository[T, PT]) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.desc.Table)
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a row with the given id exists for any owner.
func (r *CrudRepository[T, PT]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, r.desc.Table)
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}
