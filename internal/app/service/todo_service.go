package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
)

type TodoService struct {
	todos ports.TodoRepository
	now   func() time.Time
}

func NewTodoService(todos ports.TodoRepository) *TodoService {
	return &TodoService{todos: todos, now: time.Now}
}

// Create inserts a todo and attaches its assignees. If attaching fails the
// todo is rolled back: a direct creation must not leave a half-built record.
// The sweep engine deliberately does not share this behavior.
func (s *TodoService) Create(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	now := s.now().UTC()

	todo := domain.Todo{
		ID:          uuid.NewString(),
		GroupID:     input.GroupID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Category:    input.Category,
		AssigneeIDs: input.AssigneeIDs,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.todos.Create(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}

	if len(input.AssigneeIDs) > 0 {
		if err := s.todos.AttachAssignees(ctx, todo.ID, input.AssigneeIDs); err != nil {
			if deleteErr := s.todos.Delete(ctx, todo.ID); deleteErr != nil {
				zap.L().Error("failed to roll back todo after assignment failure",
					zap.String("todo_id", todo.ID), zap.Error(deleteErr))
			}
			return domain.Todo{}, fmt.Errorf("attach assignees: %w", err)
		}
	}

	return todo, nil
}

var _ ports.TodoService = (*TodoService)(nil)
