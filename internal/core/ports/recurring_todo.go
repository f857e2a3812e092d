package ports

import (
	"context"
	"time"

	"famitodo/internal/core/domain"
)

type RecurringTodoRepository interface {
	Create(ctx context.Context, todo domain.RecurringTodo) error
	GetByID(ctx context.Context, id string) (domain.RecurringTodo, error)
	ListByGroup(ctx context.Context, groupID string) ([]domain.RecurringTodo, error)
	// FindDue returns active rules whose next due instant is at or before now.
	FindDue(ctx context.Context, now time.Time) ([]domain.RecurringTodo, error)
	Update(ctx context.Context, todo domain.RecurringTodo) error
	UpdateNextDue(ctx context.Context, id string, nextDueAt time.Time) error
	SetActive(ctx context.Context, id string, isActive bool, nextDueAt *time.Time) error
	ReplaceAssignees(ctx context.Context, id string, userIDs []string) error
	Delete(ctx context.Context, id string) error
}

type RecurringTodoService interface {
	Create(ctx context.Context, input domain.CreateRecurringTodoInput) (domain.RecurringTodo, error)
	Get(ctx context.Context, id string) (domain.RecurringTodo, error)
	ListByGroup(ctx context.Context, groupID string) ([]domain.RecurringTodo, error)
	Update(ctx context.Context, id, actorID string, input domain.UpdateRecurringTodoInput) (domain.RecurringTodo, error)
	Toggle(ctx context.Context, id, actorID string) (domain.RecurringTodo, error)
	Delete(ctx context.Context, id, actorID string) error
}
