package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"famitodo/internal/core/ports"
)

const insertErrorLogQuery = `
INSERT INTO error_logs (id, error_type, error_message, stack_trace, screen_name, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`

const errorLogScreenName = "cron: recurring todo sweep"

// ErrorLogRepository persists operational errors to the error_logs table.
// RecordError never propagates its own failures: losing a log line must not
// fail the operation being reported on.
type ErrorLogRepository struct {
	db *sqlx.DB
}

var _ ports.ErrorReporter = (*ErrorLogRepository)(nil)

func NewErrorLogRepository(db *sqlx.DB) *ErrorLogRepository {
	return &ErrorLogRepository{db: db}
}

func (r *ErrorLogRepository) RecordError(ctx context.Context, errorType, message string, details map[string]string) {
	var stackTrace *string
	if len(details) > 0 {
		encoded, err := json.Marshal(details)
		if err == nil {
			value := string(encoded)
			stackTrace = &value
		}
	}

	_, err := r.db.ExecContext(ctx, insertErrorLogQuery,
		uuid.NewString(), errorType, message, stackTrace, errorLogScreenName, time.Now().UTC())
	if err != nil {
		zap.L().Error("failed to record error log",
			zap.String("error_type", errorType),
			zap.String("message", message),
			zap.Error(err))
	}
}
