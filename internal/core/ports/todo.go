package ports

import (
	"context"

	"famitodo/internal/core/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) error
	AttachAssignees(ctx context.Context, todoID string, userIDs []string) error
	Delete(ctx context.Context, id string) error
}

type TodoService interface {
	Create(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
}
