package dto

type TodoItem struct {
	ID              string   `json:"id"`
	GroupID         string   `json:"group_id"`
	Title           string   `json:"title"`
	Description     *string  `json:"description,omitempty"`
	Deadline        *string  `json:"deadline,omitempty"`
	Category        string   `json:"category"`
	IsCompleted     bool     `json:"is_completed"`
	AssignedUserIDs []string `json:"assigned_user_ids"`
	CreatedBy       string   `json:"created_by"`
	CreatedAt       string   `json:"created_at"`
}

type CreateTodoRequest struct {
	GroupID         string   `json:"group_id" binding:"required"`
	Title           string   `json:"title" binding:"required,max=255"`
	Description     *string  `json:"description" binding:"omitempty,max=65535"`
	Deadline        *string  `json:"deadline" binding:"omitempty"`
	Category        string   `json:"category" binding:"required,oneof=shopping housework other"`
	AssignedUserIDs []string `json:"assigned_user_ids" binding:"required,min=1"`
	CreatedBy       string   `json:"created_by" binding:"required"`
}
