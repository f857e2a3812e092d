package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"famitodo/internal/core/domain"
)

type recurringTodoRepoMock struct {
	mock.Mock
}

func (m *recurringTodoRepoMock) Create(ctx context.Context, todo domain.RecurringTodo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *recurringTodoRepoMock) GetByID(ctx context.Context, id string) (domain.RecurringTodo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.RecurringTodo), args.Error(1)
}

func (m *recurringTodoRepoMock) ListByGroup(ctx context.Context, groupID string) ([]domain.RecurringTodo, error) {
	args := m.Called(ctx, groupID)

	var todos []domain.RecurringTodo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.RecurringTodo)
	}
	return todos, args.Error(1)
}

func (m *recurringTodoRepoMock) FindDue(ctx context.Context, now time.Time) ([]domain.RecurringTodo, error) {
	args := m.Called(ctx, now)

	var todos []domain.RecurringTodo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.RecurringTodo)
	}
	return todos, args.Error(1)
}

func (m *recurringTodoRepoMock) Update(ctx context.Context, todo domain.RecurringTodo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *recurringTodoRepoMock) UpdateNextDue(ctx context.Context, id string, nextDueAt time.Time) error {
	return m.Called(ctx, id, nextDueAt).Error(0)
}

func (m *recurringTodoRepoMock) SetActive(ctx context.Context, id string, isActive bool, nextDueAt *time.Time) error {
	return m.Called(ctx, id, isActive, nextDueAt).Error(0)
}

func (m *recurringTodoRepoMock) ReplaceAssignees(ctx context.Context, id string, userIDs []string) error {
	return m.Called(ctx, id, userIDs).Error(0)
}

func (m *recurringTodoRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type todoRepoMock struct {
	mock.Mock
}

func (m *todoRepoMock) Create(ctx context.Context, todo domain.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *todoRepoMock) AttachAssignees(ctx context.Context, todoID string, userIDs []string) error {
	return m.Called(ctx, todoID, userIDs).Error(0)
}

func (m *todoRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type groupRepoMock struct {
	mock.Mock
}

func (m *groupRepoMock) GetOwnerID(ctx context.Context, groupID string) (string, error) {
	args := m.Called(ctx, groupID)
	return args.String(0), args.Error(1)
}

type errorReporterMock struct {
	mock.Mock
}

func (m *errorReporterMock) RecordError(ctx context.Context, errorType, message string, details map[string]string) {
	m.Called(ctx, errorType, message, details)
}
