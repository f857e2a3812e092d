package ports

import (
	"context"
	"time"

	"famitodo/internal/core/domain"
)

type SweepService interface {
	// RunSweep processes every due rule once. The error is non-nil only when
	// the due-rule query itself fails; per-rule failures are accumulated in
	// the report.
	RunSweep(ctx context.Context, now time.Time) (domain.SweepReport, error)
}
