package mapper

import (
	"time"

	"famitodo/internal/adapter/http/dto"
	"famitodo/internal/core/domain"
)

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:              todo.ID,
		GroupID:         todo.GroupID,
		Title:           todo.Title,
		Category:        string(todo.Category),
		IsCompleted:     todo.IsCompleted,
		AssignedUserIDs: todo.AssigneeIDs,
		CreatedBy:       todo.CreatedBy,
		CreatedAt:       todo.CreatedAt.UTC().Format(time.RFC3339),
	}

	if todo.Description != nil {
		value := *todo.Description
		item.Description = &value
	}

	if todo.Deadline != nil {
		value := todo.Deadline.UTC().Format(time.RFC3339)
		item.Deadline = &value
	}

	if item.AssignedUserIDs == nil {
		item.AssignedUserIDs = []string{}
	}

	return item
}
