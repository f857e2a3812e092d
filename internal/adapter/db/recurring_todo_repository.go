package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
)

const insertRecurringTodoQuery = `
INSERT INTO recurring_todos
  (id, group_id, title, description, category, recurrence_pattern, recurrence_days,
   generation_time, deadline_offset_days, is_active, next_due_at, created_by, created_at, updated_at)
VALUES
  (:id, :group_id, :title, :description, :category, :recurrence_pattern, :recurrence_days,
   :generation_time, :deadline_offset_days, :is_active, :next_due_at, :created_by, :created_at, :updated_at);
`

const getRecurringTodoQuery = `
SELECT * FROM recurring_todos WHERE id = ?;
`

const listRecurringTodosByGroupQuery = `
SELECT * FROM recurring_todos WHERE group_id = ? ORDER BY next_due_at ASC;
`

const findDueRecurringTodosQuery = `
SELECT * FROM recurring_todos WHERE is_active = TRUE AND next_due_at <= ?;
`

const updateRecurringTodoQuery = `
UPDATE recurring_todos SET
  title = :title,
  description = :description,
  category = :category,
  recurrence_pattern = :recurrence_pattern,
  recurrence_days = :recurrence_days,
  generation_time = :generation_time,
  deadline_offset_days = :deadline_offset_days,
  next_due_at = :next_due_at,
  updated_at = :updated_at
WHERE id = :id;
`

const updateNextDueQuery = `
UPDATE recurring_todos SET next_due_at = ?, updated_at = ? WHERE id = ?;
`

const listAssignmentsQuery = `
SELECT recurring_todo_id, user_id FROM recurring_todo_assignments
WHERE recurring_todo_id IN (?) ORDER BY assigned_at, user_id;
`

type RecurringTodoRepository struct {
	db *sqlx.DB
}

var _ ports.RecurringTodoRepository = (*RecurringTodoRepository)(nil)

func NewRecurringTodoRepository(db *sqlx.DB) *RecurringTodoRepository {
	return &RecurringTodoRepository{db: db}
}

type recurringTodoRow struct {
	ID                 string         `db:"id"`
	GroupID            string         `db:"group_id"`
	Title              string         `db:"title"`
	Description        sql.NullString `db:"description"`
	Category           string         `db:"category"`
	Pattern            string         `db:"recurrence_pattern"`
	Days               sql.NullString `db:"recurrence_days"`
	GenerationTime     string         `db:"generation_time"`
	DeadlineOffsetDays sql.NullInt64  `db:"deadline_offset_days"`
	IsActive           bool           `db:"is_active"`
	NextDueAt          time.Time      `db:"next_due_at"`
	CreatedBy          string         `db:"created_by"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type assignmentRow struct {
	RecurringTodoID string `db:"recurring_todo_id"`
	UserID          string `db:"user_id"`
}

func (r *RecurringTodoRepository) Create(ctx context.Context, todo domain.RecurringTodo) error {
	row, err := mapRecurringTodoToRow(todo)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NamedExecContext(ctx, insertRecurringTodoQuery, row); err != nil {
		return err
	}

	if err := insertAssignments(ctx, tx, todo.ID, todo.AssigneeIDs, todo.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RecurringTodoRepository) GetByID(ctx context.Context, id string) (domain.RecurringTodo, error) {
	var row recurringTodoRow
	if err := r.db.GetContext(ctx, &row, getRecurringTodoQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RecurringTodo{}, domain.ErrRecurringTodoNotFound
		}
		return domain.RecurringTodo{}, err
	}

	todos, err := r.attachAssigneeIDs(ctx, []recurringTodoRow{row})
	if err != nil {
		return domain.RecurringTodo{}, err
	}
	return todos[0], nil
}

func (r *RecurringTodoRepository) ListByGroup(ctx context.Context, groupID string) ([]domain.RecurringTodo, error) {
	var rows []recurringTodoRow
	if err := r.db.SelectContext(ctx, &rows, listRecurringTodosByGroupQuery, groupID); err != nil {
		return nil, err
	}
	return r.attachAssigneeIDs(ctx, rows)
}

func (r *RecurringTodoRepository) FindDue(ctx context.Context, now time.Time) ([]domain.RecurringTodo, error) {
	var rows []recurringTodoRow
	if err := r.db.SelectContext(ctx, &rows, findDueRecurringTodosQuery, now.UTC()); err != nil {
		return nil, err
	}
	return r.attachAssigneeIDs(ctx, rows)
}

func (r *RecurringTodoRepository) Update(ctx context.Context, todo domain.RecurringTodo) error {
	row, err := mapRecurringTodoToRow(todo)
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx, updateRecurringTodoQuery, row)
	return err
}

func (r *RecurringTodoRepository) UpdateNextDue(ctx context.Context, id string, nextDueAt time.Time) error {
	_, err := r.db.ExecContext(ctx, updateNextDueQuery, nextDueAt.UTC(), time.Now().UTC(), id)
	return err
}

func (r *RecurringTodoRepository) SetActive(ctx context.Context, id string, isActive bool, nextDueAt *time.Time) error {
	var err error
	if nextDueAt != nil {
		_, err = r.db.ExecContext(ctx,
			`UPDATE recurring_todos SET is_active = ?, next_due_at = ?, updated_at = ? WHERE id = ?;`,
			isActive, nextDueAt.UTC(), time.Now().UTC(), id)
	} else {
		_, err = r.db.ExecContext(ctx,
			`UPDATE recurring_todos SET is_active = ?, updated_at = ? WHERE id = ?;`,
			isActive, time.Now().UTC(), id)
	}
	return err
}

func (r *RecurringTodoRepository) ReplaceAssignees(ctx context.Context, id string, userIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recurring_todo_assignments WHERE recurring_todo_id = ?;`, id); err != nil {
		return err
	}

	if err := insertAssignments(ctx, tx, id, userIDs, time.Now().UTC()); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RecurringTodoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recurring_todos WHERE id = ?;`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecurringTodoNotFound
	}
	return nil
}

func insertAssignments(ctx context.Context, tx *sqlx.Tx, recurringTodoID string, userIDs []string, assignedAt time.Time) error {
	for _, userID := range userIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recurring_todo_assignments (recurring_todo_id, user_id, assigned_at) VALUES (?, ?, ?);`,
			recurringTodoID, userID, assignedAt); err != nil {
			return err
		}
	}
	return nil
}

// attachAssigneeIDs resolves assignments for a batch of rows in one query.
func (r *RecurringTodoRepository) attachAssigneeIDs(ctx context.Context, rows []recurringTodoRow) ([]domain.RecurringTodo, error) {
	todos := make([]domain.RecurringTodo, 0, len(rows))
	if len(rows) == 0 {
		return todos, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(listAssignmentsQuery, ids)
	if err != nil {
		return nil, err
	}

	var assignments []assignmentRow
	if err := r.db.SelectContext(ctx, &assignments, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	assigneesByRule := make(map[string][]string, len(rows))
	for _, a := range assignments {
		assigneesByRule[a.RecurringTodoID] = append(assigneesByRule[a.RecurringTodoID], a.UserID)
	}

	for _, row := range rows {
		todo, err := mapRowToRecurringTodo(row)
		if err != nil {
			return nil, err
		}
		todo.AssigneeIDs = assigneesByRule[row.ID]
		todos = append(todos, todo)
	}

	return todos, nil
}

func mapRecurringTodoToRow(todo domain.RecurringTodo) (recurringTodoRow, error) {
	row := recurringTodoRow{
		ID:             todo.ID,
		GroupID:        todo.GroupID,
		Title:          todo.Title,
		Category:       string(todo.Category),
		Pattern:        string(todo.Pattern),
		GenerationTime: todo.GenerationTime,
		IsActive:       todo.IsActive,
		NextDueAt:      todo.NextDueAt.UTC(),
		CreatedBy:      todo.CreatedBy,
		CreatedAt:      todo.CreatedAt.UTC(),
		UpdatedAt:      todo.UpdatedAt.UTC(),
	}

	if todo.Description != nil {
		row.Description = sql.NullString{String: *todo.Description, Valid: true}
	}

	if len(todo.Days) > 0 {
		encoded, err := json.Marshal(todo.Days)
		if err != nil {
			return recurringTodoRow{}, fmt.Errorf("encode recurrence days: %w", err)
		}
		row.Days = sql.NullString{String: string(encoded), Valid: true}
	}

	if todo.DeadlineOffsetDays != nil {
		row.DeadlineOffsetDays = sql.NullInt64{Int64: int64(*todo.DeadlineOffsetDays), Valid: true}
	}

	return row, nil
}

func mapRowToRecurringTodo(row recurringTodoRow) (domain.RecurringTodo, error) {
	todo := domain.RecurringTodo{
		ID:             row.ID,
		GroupID:        row.GroupID,
		Title:          row.Title,
		Category:       domain.TodoCategory(row.Category),
		Pattern:        domain.RecurrencePattern(row.Pattern),
		GenerationTime: row.GenerationTime,
		IsActive:       row.IsActive,
		NextDueAt:      row.NextDueAt.UTC(),
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		todo.Description = &value
	}

	if row.Days.Valid {
		if err := json.Unmarshal([]byte(row.Days.String), &todo.Days); err != nil {
			return domain.RecurringTodo{}, fmt.Errorf("decode recurrence days for %s: %w", row.ID, err)
		}
	}

	if row.DeadlineOffsetDays.Valid {
		value := int(row.DeadlineOffsetDays.Int64)
		todo.DeadlineOffsetDays = &value
	}

	return todo, nil
}
