package mapper

import (
	"time"

	"famitodo/internal/adapter/http/dto"
	"famitodo/internal/core/domain"
)

func ToRecurringTodoItems(todos []domain.RecurringTodo) []dto.RecurringTodoItem {
	items := make([]dto.RecurringTodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToRecurringTodoItem(todo))
	}
	return items
}

func ToRecurringTodoItem(todo domain.RecurringTodo) dto.RecurringTodoItem {
	item := dto.RecurringTodoItem{
		ID:                todo.ID,
		GroupID:           todo.GroupID,
		Title:             todo.Title,
		Category:          string(todo.Category),
		RecurrencePattern: string(todo.Pattern),
		RecurrenceDays:    todo.Days,
		GenerationTime:    todo.GenerationTime,
		AssignedUserIDs:   todo.AssigneeIDs,
		IsActive:          todo.IsActive,
		NextDueAt:         todo.NextDueAt.UTC().Format(time.RFC3339),
		CreatedBy:         todo.CreatedBy,
		CreatedAt:         todo.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         todo.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if todo.Description != nil {
		value := *todo.Description
		item.Description = &value
	}

	if todo.DeadlineOffsetDays != nil {
		value := *todo.DeadlineOffsetDays
		item.DeadlineOffsetDays = &value
	}

	if item.AssignedUserIDs == nil {
		item.AssignedUserIDs = []string{}
	}

	return item
}
