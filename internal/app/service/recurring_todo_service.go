package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
	"famitodo/internal/core/recurrence"
)

// RecurringTodoService owns the lifecycle of recurrence rules. NextDueAt is
// never taken from client input: it is stamped here via the recurrence
// calculator on create, on any edit that changes the rule's shape, and on
// reactivation.
type RecurringTodoService struct {
	recurringTodos ports.RecurringTodoRepository
	groups         ports.GroupRepository
	now            func() time.Time
}

func NewRecurringTodoService(recurringTodos ports.RecurringTodoRepository, groups ports.GroupRepository) *RecurringTodoService {
	return &RecurringTodoService{
		recurringTodos: recurringTodos,
		groups:         groups,
		now:            time.Now,
	}
}

func (s *RecurringTodoService) Create(ctx context.Context, input domain.CreateRecurringTodoInput) (domain.RecurringTodo, error) {
	now := s.now().UTC()

	nextDueAt, err := recurrence.NextOccurrence(input.Pattern, input.Days, input.GenerationTime, now)
	if err != nil {
		return domain.RecurringTodo{}, err
	}

	todo := domain.RecurringTodo{
		ID:                 uuid.NewString(),
		GroupID:            input.GroupID,
		Title:              input.Title,
		Description:        input.Description,
		Category:           input.Category,
		Pattern:            input.Pattern,
		Days:               input.Days,
		GenerationTime:     input.GenerationTime,
		DeadlineOffsetDays: input.DeadlineOffsetDays,
		AssigneeIDs:        input.AssigneeIDs,
		IsActive:           true,
		NextDueAt:          nextDueAt,
		CreatedBy:          input.CreatedBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.recurringTodos.Create(ctx, todo); err != nil {
		return domain.RecurringTodo{}, fmt.Errorf("create recurring todo: %w", err)
	}

	return todo, nil
}

func (s *RecurringTodoService) Get(ctx context.Context, id string) (domain.RecurringTodo, error) {
	return s.recurringTodos.GetByID(ctx, id)
}

func (s *RecurringTodoService) ListByGroup(ctx context.Context, groupID string) ([]domain.RecurringTodo, error) {
	return s.recurringTodos.ListByGroup(ctx, groupID)
}

func (s *RecurringTodoService) Update(ctx context.Context, id, actorID string, input domain.UpdateRecurringTodoInput) (domain.RecurringTodo, error) {
	todo, err := s.recurringTodos.GetByID(ctx, id)
	if err != nil {
		return domain.RecurringTodo{}, err
	}

	if err := s.authorize(ctx, todo, actorID); err != nil {
		return domain.RecurringTodo{}, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.DescriptionSet {
		todo.Description = input.Description
	}
	if input.Category != nil {
		todo.Category = *input.Category
	}
	if input.Pattern != nil {
		todo.Pattern = *input.Pattern
	}
	if input.DaysSet {
		todo.Days = input.Days
	}
	if input.GenerationTime != nil {
		todo.GenerationTime = *input.GenerationTime
	}
	if input.DeadlineOffsetDaysSet {
		todo.DeadlineOffsetDays = input.DeadlineOffsetDays
	}

	now := s.now().UTC()
	todo.UpdatedAt = now

	// A stale NextDueAt computed under the old shape must not fire with the
	// new semantics.
	if input.ChangesShape() {
		nextDueAt, err := recurrence.NextOccurrence(todo.Pattern, todo.Days, todo.GenerationTime, now)
		if err != nil {
			return domain.RecurringTodo{}, err
		}
		todo.NextDueAt = nextDueAt
	}

	if err := s.recurringTodos.Update(ctx, todo); err != nil {
		return domain.RecurringTodo{}, fmt.Errorf("update recurring todo: %w", err)
	}

	if input.AssigneeIDsSet {
		if err := s.recurringTodos.ReplaceAssignees(ctx, id, input.AssigneeIDs); err != nil {
			return domain.RecurringTodo{}, fmt.Errorf("replace assignees: %w", err)
		}
		todo.AssigneeIDs = input.AssigneeIDs
	}

	return todo, nil
}

func (s *RecurringTodoService) Toggle(ctx context.Context, id, actorID string) (domain.RecurringTodo, error) {
	todo, err := s.recurringTodos.GetByID(ctx, id)
	if err != nil {
		return domain.RecurringTodo{}, err
	}

	if err := s.authorize(ctx, todo, actorID); err != nil {
		return domain.RecurringTodo{}, err
	}

	activating := !todo.IsActive

	// Reactivation restamps NextDueAt from the toggle instant; deactivation
	// leaves it untouched, the field is inert while inactive.
	var nextDueAt *time.Time
	if activating {
		next, err := recurrence.NextOccurrence(todo.Pattern, todo.Days, todo.GenerationTime, s.now().UTC())
		if err != nil {
			return domain.RecurringTodo{}, err
		}
		nextDueAt = &next
		todo.NextDueAt = next
	}

	if err := s.recurringTodos.SetActive(ctx, id, activating, nextDueAt); err != nil {
		return domain.RecurringTodo{}, fmt.Errorf("toggle recurring todo: %w", err)
	}

	todo.IsActive = activating
	return todo, nil
}

func (s *RecurringTodoService) Delete(ctx context.Context, id, actorID string) error {
	todo, err := s.recurringTodos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, todo, actorID); err != nil {
		return err
	}

	return s.recurringTodos.Delete(ctx, id)
}

// authorize allows the rule's creator and the owning group's owner.
func (s *RecurringTodoService) authorize(ctx context.Context, todo domain.RecurringTodo, actorID string) error {
	if todo.CreatedBy == actorID {
		return nil
	}

	ownerID, err := s.groups.GetOwnerID(ctx, todo.GroupID)
	if err != nil {
		return err
	}
	if ownerID != actorID {
		return domain.ErrPermissionDenied
	}

	return nil
}

var _ ports.RecurringTodoService = (*RecurringTodoService)(nil)
