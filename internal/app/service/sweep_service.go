package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
	"famitodo/internal/core/recurrence"
)

// SweepErrorType tags error-log rows written by the sweep.
const SweepErrorType = "recurring_todo_generation_error"

const defaultRuleTimeout = 10 * time.Second

// SweepService runs one generation pass over all due recurrence rules.
//
// Each rule is processed independently: create the todo, attach assignees,
// advance the rule's next due instant. A failing rule never aborts the batch.
// There is no transaction around create+advance, so a crash (or an advance
// failure) after the todo insert leaves the rule due and a duplicate todo may
// be generated on the next tick. At-least-once is the documented contract.
type SweepService struct {
	recurringTodos ports.RecurringTodoRepository
	todos          ports.TodoRepository
	reporter       ports.ErrorReporter
	ruleTimeout    time.Duration
}

func NewSweepService(recurringTodos ports.RecurringTodoRepository, todos ports.TodoRepository, reporter ports.ErrorReporter, ruleTimeout time.Duration) *SweepService {
	if ruleTimeout <= 0 {
		ruleTimeout = defaultRuleTimeout
	}
	return &SweepService{
		recurringTodos: recurringTodos,
		todos:          todos,
		reporter:       reporter,
		ruleTimeout:    ruleTimeout,
	}
}

func (s *SweepService) RunSweep(ctx context.Context, now time.Time) (domain.SweepReport, error) {
	due, err := s.recurringTodos.FindDue(ctx, now)
	if err != nil {
		return domain.SweepReport{}, fmt.Errorf("find due recurring todos: %w", err)
	}

	report := domain.SweepReport{}
	if len(due) == 0 {
		return report, nil
	}

	zap.L().Info("sweep started", zap.Time("now", now), zap.Int("due", len(due)))

	for _, rule := range due {
		if err := s.processRule(ctx, rule, now); err != nil {
			zap.L().Error("sweep rule failed",
				zap.String("recurring_todo_id", rule.ID), zap.Error(err))
			report.Errors++
			report.Failures = append(report.Failures, fmt.Sprintf("rule %s: %v", rule.ID, err))
			continue
		}
		report.Processed++
	}

	zap.L().Info("sweep finished",
		zap.Int("processed", report.Processed), zap.Int("errors", report.Errors))

	return report, nil
}

func (s *SweepService) processRule(ctx context.Context, rule domain.RecurringTodo, now time.Time) error {
	ruleCtx, cancel := context.WithTimeout(ctx, s.ruleTimeout)
	defer cancel()

	todo := domain.Todo{
		ID:          uuid.NewString(),
		GroupID:     rule.GroupID,
		Title:       rule.Title,
		Description: rule.Description,
		Category:    rule.Category,
		AssigneeIDs: rule.AssigneeIDs,
		CreatedBy:   rule.CreatedBy,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if rule.DeadlineOffsetDays != nil {
		deadline := now.UTC().AddDate(0, 0, *rule.DeadlineOffsetDays)
		todo.Deadline = &deadline
	}

	// Creation failure leaves NextDueAt unadvanced: the rule stays due and is
	// retried on the next tick. That is the engine's only retry mechanism.
	if err := s.todos.Create(ruleCtx, todo); err != nil {
		s.reporter.RecordError(ctx, SweepErrorType,
			fmt.Sprintf("todo creation failed: %v", err),
			map[string]string{"recurring_todo_id": rule.ID})
		return fmt.Errorf("create todo: %w", err)
	}

	// The todo exists from here on. Assignment failure is logged only; a todo
	// without assignees beats a duplicate todo on retry.
	if len(rule.AssigneeIDs) > 0 {
		if err := s.todos.AttachAssignees(ruleCtx, todo.ID, rule.AssigneeIDs); err != nil {
			zap.L().Warn("failed to attach assignees to generated todo",
				zap.String("recurring_todo_id", rule.ID),
				zap.String("todo_id", todo.ID),
				zap.Error(err))
		}
	}

	next, err := recurrence.NextOccurrence(rule.Pattern, rule.Days, rule.GenerationTime, now)
	if err != nil {
		s.reporter.RecordError(ctx, SweepErrorType,
			fmt.Sprintf("next occurrence computation failed: %v", err),
			map[string]string{"recurring_todo_id": rule.ID})
		return fmt.Errorf("compute next occurrence: %w", err)
	}

	if err := s.recurringTodos.UpdateNextDue(ruleCtx, rule.ID, next); err != nil {
		s.reporter.RecordError(ctx, SweepErrorType,
			fmt.Sprintf("next due update failed: %v", err),
			map[string]string{"recurring_todo_id": rule.ID})
		return fmt.Errorf("advance next due: %w", err)
	}

	return nil
}

var _ ports.SweepService = (*SweepService)(nil)
