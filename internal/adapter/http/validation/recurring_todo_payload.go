package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"famitodo/internal/adapter/http/dto"
	"famitodo/internal/core/domain"
	"famitodo/internal/core/recurrence"
)

var ErrInvalidRecurringTodoPayload = errors.New("invalid recurring todo payload")

// BuildCreateRecurringTodoInput validates a create request. The recurrence
// shape is checked strictly here: an empty day set on weekly/monthly rules is
// rejected at the edge even though the calculator still tolerates it for
// rows that predate this validation.
func BuildCreateRecurringTodoInput(req dto.CreateRecurringTodoRequest) (domain.CreateRecurringTodoInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
	}

	pattern := domain.RecurrencePattern(req.RecurrencePattern)
	days, err := validateRecurrenceShape(pattern, req.RecurrenceDays)
	if err != nil {
		return domain.CreateRecurringTodoInput{}, err
	}

	if _, err := recurrence.ParseGenerationTime(req.GenerationTime); err != nil {
		return domain.CreateRecurringTodoInput{}, err
	}

	return domain.CreateRecurringTodoInput{
		GroupID:            req.GroupID,
		Title:              title,
		Description:        req.Description,
		Category:           domain.TodoCategory(req.Category),
		Pattern:            pattern,
		Days:               days,
		GenerationTime:     req.GenerationTime,
		DeadlineOffsetDays: req.DeadlineOffsetDays,
		AssigneeIDs:        req.AssignedUserIDs,
		CreatedBy:          req.CreatedBy,
	}, nil
}

// BuildUpdateRecurringTodoInput validates a partial update. raw distinguishes
// absent fields from explicit nulls. When the update changes the recurrence
// shape, the merged shape (request fields over current ones) must validate as
// a whole.
func BuildUpdateRecurringTodoInput(req dto.UpdateRecurringTodoRequest, raw map[string]json.RawMessage, current domain.RecurringTodo) (domain.UpdateRecurringTodoInput, error) {
	if !hasUpdateFields(raw) {
		return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
	}

	input := domain.UpdateRecurringTodoInput{}

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		if !isJSONNull(raw["description"]) && req.Description == nil {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		input.Description = req.Description
		input.DescriptionSet = true
	}

	if hasJSONField(raw, "category") {
		if req.Category == nil || !isValidCategory(*req.Category) {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		value := domain.TodoCategory(*req.Category)
		input.Category = &value
	}

	pattern := current.Pattern
	if hasJSONField(raw, "recurrence_pattern") {
		if req.RecurrencePattern == nil || !isValidPattern(*req.RecurrencePattern) {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		pattern = domain.RecurrencePattern(*req.RecurrencePattern)
		input.Pattern = &pattern
	}

	days := current.Days
	if hasJSONField(raw, "recurrence_days") {
		days = req.RecurrenceDays
		input.DaysSet = true
	}

	if input.Pattern != nil || input.DaysSet {
		validated, err := validateRecurrenceShape(pattern, days)
		if err != nil {
			return domain.UpdateRecurringTodoInput{}, err
		}
		if input.DaysSet {
			input.Days = validated
		}
	}

	if hasJSONField(raw, "generation_time") {
		if req.GenerationTime == nil {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		if _, err := recurrence.ParseGenerationTime(*req.GenerationTime); err != nil {
			return domain.UpdateRecurringTodoInput{}, err
		}
		input.GenerationTime = req.GenerationTime
	}

	if hasJSONField(raw, "deadline_offset_days") {
		if !isJSONNull(raw["deadline_offset_days"]) {
			if req.DeadlineOffsetDays == nil || *req.DeadlineOffsetDays < 0 || *req.DeadlineOffsetDays > 365 {
				return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
			}
		}
		input.DeadlineOffsetDays = req.DeadlineOffsetDays
		input.DeadlineOffsetDaysSet = true
	}

	if hasJSONField(raw, "assigned_user_ids") {
		if len(req.AssignedUserIDs) == 0 {
			return domain.UpdateRecurringTodoInput{}, ErrInvalidRecurringTodoPayload
		}
		input.AssigneeIDs = req.AssignedUserIDs
		input.AssigneeIDsSet = true
	}

	return input, nil
}

// validateRecurrenceShape normalizes days for the pattern: daily rules drop
// any day set, weekly rules need weekdays 0..6, monthly rules need exactly
// one value in 1..31 or the last-day sentinel.
func validateRecurrenceShape(pattern domain.RecurrencePattern, days []int) ([]int, error) {
	switch pattern {
	case domain.RecurrenceDaily:
		return nil, nil
	case domain.RecurrenceWeekly:
		if len(days) == 0 {
			return nil, ErrInvalidRecurringTodoPayload
		}
		for _, day := range days {
			if day < 0 || day > 6 {
				return nil, ErrInvalidRecurringTodoPayload
			}
		}
		return days, nil
	case domain.RecurrenceMonthly:
		if len(days) != 1 {
			return nil, ErrInvalidRecurringTodoPayload
		}
		day := days[0]
		if day != domain.LastDayOfMonth && (day < 1 || day > 31) {
			return nil, ErrInvalidRecurringTodoPayload
		}
		return days, nil
	default:
		return nil, ErrInvalidRecurringTodoPayload
	}
}

func isValidPattern(value string) bool {
	switch domain.RecurrencePattern(value) {
	case domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
		return true
	}
	return false
}

func isValidCategory(value string) bool {
	switch domain.TodoCategory(value) {
	case domain.TodoCategoryShopping, domain.TodoCategoryHousework, domain.TodoCategoryOther:
		return true
	}
	return false
}

func hasUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "recurrence_pattern") ||
		hasJSONField(raw, "recurrence_days") ||
		hasJSONField(raw, "generation_time") ||
		hasJSONField(raw, "deadline_offset_days") ||
		hasJSONField(raw, "assigned_user_ids")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
