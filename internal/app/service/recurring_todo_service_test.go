package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"famitodo/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecurringTodoService_Create_StampsNextDueAt(t *testing.T) {
	// 2025-06-10 08:00 JST.
	now := time.Date(2025, time.June, 9, 23, 0, 0, 0, time.UTC)

	ruleRepo := new(recurringTodoRepoMock)
	var created domain.RecurringTodo
	ruleRepo.On("Create", mock.Anything, mock.MatchedBy(func(todo domain.RecurringTodo) bool {
		created = todo
		return todo.IsActive
	})).Return(nil).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))
	svc.now = fixedClock(now)

	got, err := svc.Create(context.Background(), domain.CreateRecurringTodoInput{
		GroupID:        "group-1",
		Title:          "weekly shopping",
		Category:       domain.TodoCategoryShopping,
		Pattern:        domain.RecurrenceDaily,
		GenerationTime: "09:00",
		AssigneeIDs:    []string{"user-1"},
		CreatedBy:      "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.True(t, got.IsActive)

	// 09:00 JST on the same local day = 00:00 UTC.
	wantNext := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, wantNext, got.NextDueAt)
	require.Equal(t, created.NextDueAt, got.NextDueAt)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Create_RejectsMalformedGenerationTime(t *testing.T) {
	ruleRepo := new(recurringTodoRepoMock)
	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))

	_, err := svc.Create(context.Background(), domain.CreateRecurringTodoInput{
		GroupID:        "group-1",
		Title:          "weekly shopping",
		Pattern:        domain.RecurrenceDaily,
		GenerationTime: "9am",
		CreatedBy:      "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidGenerationTime)
	ruleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func existingRule() domain.RecurringTodo {
	return domain.RecurringTodo{
		ID:             "rule-1",
		GroupID:        "group-1",
		Title:          "weekly shopping",
		Category:       domain.TodoCategoryShopping,
		Pattern:        domain.RecurrenceWeekly,
		Days:           []int{6},
		GenerationTime: "09:00",
		AssigneeIDs:    []string{"user-1"},
		IsActive:       true,
		NextDueAt:      time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		CreatedBy:      "user-1",
	}
}

func TestRecurringTodoService_Update_ShapeChangeRecomputesNextDue(t *testing.T) {
	// 2025-06-10 08:00 JST, a Tuesday.
	now := time.Date(2025, time.June, 9, 23, 0, 0, 0, time.UTC)
	rule := existingRule()

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()

	// Switching to daily: next due becomes today 09:00 JST.
	wantNext := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	ruleRepo.On("Update", mock.Anything, mock.MatchedBy(func(todo domain.RecurringTodo) bool {
		return todo.Pattern == domain.RecurrenceDaily && todo.NextDueAt.Equal(wantNext)
	})).Return(nil).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))
	svc.now = fixedClock(now)

	pattern := domain.RecurrenceDaily
	got, err := svc.Update(context.Background(), rule.ID, "user-1", domain.UpdateRecurringTodoInput{
		Pattern: &pattern,
		Days:    nil,
		DaysSet: true,
	})
	require.NoError(t, err)
	require.Equal(t, wantNext, got.NextDueAt)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Update_TemplateChangeKeepsNextDue(t *testing.T) {
	rule := existingRule()

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()
	ruleRepo.On("Update", mock.Anything, mock.MatchedBy(func(todo domain.RecurringTodo) bool {
		return todo.Title == "monthly shopping" && todo.NextDueAt.Equal(rule.NextDueAt)
	})).Return(nil).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))

	title := "monthly shopping"
	got, err := svc.Update(context.Background(), rule.ID, "user-1", domain.UpdateRecurringTodoInput{
		Title: &title,
	})
	require.NoError(t, err)
	require.Equal(t, rule.NextDueAt, got.NextDueAt)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Update_ReplacesAssignees(t *testing.T) {
	rule := existingRule()

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()
	ruleRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	ruleRepo.On("ReplaceAssignees", mock.Anything, rule.ID, []string{"user-2", "user-3"}).Return(nil).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))

	got, err := svc.Update(context.Background(), rule.ID, "user-1", domain.UpdateRecurringTodoInput{
		AssigneeIDs:    []string{"user-2", "user-3"},
		AssigneeIDsSet: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"user-2", "user-3"}, got.AssigneeIDs)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Update_PermissionDenied(t *testing.T) {
	rule := existingRule()

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()

	groupRepo := new(groupRepoMock)
	groupRepo.On("GetOwnerID", mock.Anything, rule.GroupID).Return("owner-1", nil).Once()

	svc := NewRecurringTodoService(ruleRepo, groupRepo)

	title := "hijacked"
	_, err := svc.Update(context.Background(), rule.ID, "stranger", domain.UpdateRecurringTodoInput{Title: &title})
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
	ruleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecurringTodoService_Update_GroupOwnerAllowed(t *testing.T) {
	rule := existingRule()

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()
	ruleRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	groupRepo := new(groupRepoMock)
	groupRepo.On("GetOwnerID", mock.Anything, rule.GroupID).Return("owner-1", nil).Once()

	svc := NewRecurringTodoService(ruleRepo, groupRepo)

	title := "renamed by owner"
	_, err := svc.Update(context.Background(), rule.ID, "owner-1", domain.UpdateRecurringTodoInput{Title: &title})
	require.NoError(t, err)
	groupRepo.AssertExpectations(t)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Toggle_ReactivationRecomputes(t *testing.T) {
	// 2025-06-10 08:00 JST, a Tuesday; next Saturday is June 14.
	now := time.Date(2025, time.June, 9, 23, 0, 0, 0, time.UTC)
	rule := existingRule()
	rule.IsActive = false
	rule.NextDueAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) // stale

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()

	wantNext := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	ruleRepo.On("SetActive", mock.Anything, rule.ID, true, mock.MatchedBy(func(next *time.Time) bool {
		return next != nil && next.Equal(wantNext)
	})).Return(nil).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))
	svc.now = fixedClock(now)

	got, err := svc.Toggle(context.Background(), rule.ID, "user-1")
	require.NoError(t, err)
	require.True(t, got.IsActive)
	require.Equal(t, wantNext, got.NextDueAt)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Toggle_DeactivationKeepsNextDue(t *testing.T) {
	rule := existingRule()

	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, rule.ID).Return(rule, nil).Once()
	ruleRepo.On("SetActive", mock.Anything, rule.ID, false, (*time.Time)(nil)).Return(nil).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))

	got, err := svc.Toggle(context.Background(), rule.ID, "user-1")
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.Equal(t, rule.NextDueAt, got.NextDueAt)
	ruleRepo.AssertExpectations(t)
}

func TestRecurringTodoService_Delete_NotFound(t *testing.T) {
	ruleRepo := new(recurringTodoRepoMock)
	ruleRepo.On("GetByID", mock.Anything, "missing").
		Return(domain.RecurringTodo{}, domain.ErrRecurringTodoNotFound).Once()

	svc := NewRecurringTodoService(ruleRepo, new(groupRepoMock))

	err := svc.Delete(context.Background(), "missing", "user-1")
	require.ErrorIs(t, err, domain.ErrRecurringTodoNotFound)
	ruleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTodoService_Create_RollsBackOnAssignmentFailure(t *testing.T) {
	todoRepo := new(todoRepoMock)
	var createdID string
	todoRepo.On("Create", mock.Anything, mock.MatchedBy(func(todo domain.Todo) bool {
		createdID = todo.ID
		return todo.Title == "buy milk"
	})).Return(nil).Once()
	todoRepo.On("AttachAssignees", mock.Anything, mock.Anything, []string{"user-1"}).
		Return(errors.New("insert failed")).Once()
	todoRepo.On("Delete", mock.Anything, mock.MatchedBy(func(id string) bool {
		return id == createdID
	})).Return(nil).Once()

	svc := NewTodoService(todoRepo)

	_, err := svc.Create(context.Background(), domain.CreateTodoInput{
		GroupID:     "group-1",
		Title:       "buy milk",
		Category:    domain.TodoCategoryShopping,
		AssigneeIDs: []string{"user-1"},
		CreatedBy:   "user-1",
	})
	require.Error(t, err)
	todoRepo.AssertExpectations(t)
}

func TestTodoService_Create_Success(t *testing.T) {
	now := time.Date(2025, time.June, 10, 1, 0, 0, 0, time.UTC)

	todoRepo := new(todoRepoMock)
	todoRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	todoRepo.On("AttachAssignees", mock.Anything, mock.Anything, []string{"user-1", "user-2"}).Return(nil).Once()

	svc := NewTodoService(todoRepo)
	svc.now = fixedClock(now)

	got, err := svc.Create(context.Background(), domain.CreateTodoInput{
		GroupID:     "group-1",
		Title:       "buy milk",
		Category:    domain.TodoCategoryShopping,
		AssigneeIDs: []string{"user-1", "user-2"},
		CreatedBy:   "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.False(t, got.IsCompleted)
	require.Equal(t, now, got.CreatedAt)
	todoRepo.AssertExpectations(t)
}
