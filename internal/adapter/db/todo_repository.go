package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
)

const insertTodoQuery = `
INSERT INTO todos
  (id, group_id, title, description, deadline, category, is_completed, created_by, created_at, updated_at)
VALUES
  (:id, :group_id, :title, :description, :deadline, :category, :is_completed, :created_by, :created_at, :updated_at);
`

type TodoRepository struct {
	db *sqlx.DB
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

type todoRow struct {
	ID          string         `db:"id"`
	GroupID     string         `db:"group_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Deadline    sql.NullTime   `db:"deadline"`
	Category    string         `db:"category"`
	IsCompleted bool           `db:"is_completed"`
	CreatedBy   string         `db:"created_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) error {
	row := todoRow{
		ID:          todo.ID,
		GroupID:     todo.GroupID,
		Title:       todo.Title,
		Category:    string(todo.Category),
		IsCompleted: todo.IsCompleted,
		CreatedBy:   todo.CreatedBy,
		CreatedAt:   todo.CreatedAt.UTC(),
		UpdatedAt:   todo.UpdatedAt.UTC(),
	}

	if todo.Description != nil {
		row.Description = sql.NullString{String: *todo.Description, Valid: true}
	}
	if todo.Deadline != nil {
		row.Deadline = sql.NullTime{Time: todo.Deadline.UTC(), Valid: true}
	}

	_, err := r.db.NamedExecContext(ctx, insertTodoQuery, row)
	return err
}

func (r *TodoRepository) AttachAssignees(ctx context.Context, todoID string, userIDs []string) error {
	assignedAt := time.Now().UTC()
	for _, userID := range userIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO todo_assignments (todo_id, user_id, assigned_at) VALUES (?, ?, ?);`,
			todoID, userID, assignedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?;`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
