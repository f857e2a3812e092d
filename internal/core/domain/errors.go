package domain

import "errors"

var (
	ErrRecurringTodoNotFound = errors.New("recurring todo not found")
	ErrTodoNotFound          = errors.New("todo not found")
	ErrGroupNotFound         = errors.New("group not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidGenerationTime = errors.New("invalid generation time")
)
