package domain

import "time"

type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// LastDayOfMonth is the sentinel day value meaning "last calendar day of the
// month" for monthly rules.
const LastDayOfMonth = -1

type RecurringTodo struct {
	ID                 string
	GroupID            string
	Title              string
	Description        *string
	Category           TodoCategory
	Pattern            RecurrencePattern
	Days               []int
	GenerationTime     string
	DeadlineOffsetDays *int
	AssigneeIDs        []string
	IsActive           bool
	NextDueAt          time.Time
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateRecurringTodoInput struct {
	GroupID            string
	Title              string
	Description        *string
	Category           TodoCategory
	Pattern            RecurrencePattern
	Days               []int
	GenerationTime     string
	DeadlineOffsetDays *int
	AssigneeIDs        []string
	CreatedBy          string
}

// UpdateRecurringTodoInput carries a partial update. The *Set flags separate
// "field absent" from "field explicitly set to null".
type UpdateRecurringTodoInput struct {
	Title                 *string
	Description           *string
	DescriptionSet        bool
	Category              *TodoCategory
	Pattern               *RecurrencePattern
	Days                  []int
	DaysSet               bool
	GenerationTime        *string
	DeadlineOffsetDays    *int
	DeadlineOffsetDaysSet bool
	AssigneeIDs           []string
	AssigneeIDsSet        bool
}

// ChangesShape reports whether the update touches any field that feeds the
// next-occurrence computation. A rule whose shape changed must have its
// NextDueAt restamped from the edit instant.
func (in UpdateRecurringTodoInput) ChangesShape() bool {
	return in.Pattern != nil || in.DaysSet || in.GenerationTime != nil
}
