package dto

type RecurringTodoItem struct {
	ID                 string   `json:"id"`
	GroupID            string   `json:"group_id"`
	Title              string   `json:"title"`
	Description        *string  `json:"description,omitempty"`
	Category           string   `json:"category"`
	RecurrencePattern  string   `json:"recurrence_pattern"`
	RecurrenceDays     []int    `json:"recurrence_days,omitempty"`
	GenerationTime     string   `json:"generation_time"`
	DeadlineOffsetDays *int     `json:"deadline_offset_days,omitempty"`
	AssignedUserIDs    []string `json:"assigned_user_ids"`
	IsActive           bool     `json:"is_active"`
	NextDueAt          string   `json:"next_due_at"`
	CreatedBy          string   `json:"created_by"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type CreateRecurringTodoRequest struct {
	GroupID            string   `json:"group_id" binding:"required"`
	Title              string   `json:"title" binding:"required,max=255"`
	Description        *string  `json:"description" binding:"omitempty,max=65535"`
	Category           string   `json:"category" binding:"required,oneof=shopping housework other"`
	RecurrencePattern  string   `json:"recurrence_pattern" binding:"required,oneof=daily weekly monthly"`
	RecurrenceDays     []int    `json:"recurrence_days"`
	GenerationTime     string   `json:"generation_time" binding:"required"`
	DeadlineOffsetDays *int     `json:"deadline_offset_days" binding:"omitempty,gte=0,lte=365"`
	AssignedUserIDs    []string `json:"assigned_user_ids" binding:"required,min=1"`
	CreatedBy          string   `json:"created_by" binding:"required"`
}

type UpdateRecurringTodoRequest struct {
	UserID             string   `json:"user_id"`
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	Category           *string  `json:"category"`
	RecurrencePattern  *string  `json:"recurrence_pattern"`
	RecurrenceDays     []int    `json:"recurrence_days"`
	GenerationTime     *string  `json:"generation_time"`
	DeadlineOffsetDays *int     `json:"deadline_offset_days"`
	AssignedUserIDs    []string `json:"assigned_user_ids"`
}

type ToggleRecurringTodoRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type DeleteRecurringTodoRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
