package domain

import "time"

type TodoCategory string

const (
	TodoCategoryShopping  TodoCategory = "shopping"
	TodoCategoryHousework TodoCategory = "housework"
	TodoCategoryOther     TodoCategory = "other"
)

type Todo struct {
	ID          string
	GroupID     string
	Title       string
	Description *string
	Deadline    *time.Time
	Category    TodoCategory
	IsCompleted bool
	AssigneeIDs []string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTodoInput struct {
	GroupID     string
	Title       string
	Description *string
	Deadline    *time.Time
	Category    TodoCategory
	AssigneeIDs []string
	CreatedBy   string
}
