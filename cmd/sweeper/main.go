package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	dbadapter "famitodo/internal/adapter/db"
	"famitodo/internal/app/service"
	"famitodo/internal/config"
)

// The sweeper runs the recurring-todo sweep on a fixed interval, replacing an
// external cron hitting the /internal/sweep endpoint when running the stack
// as plain processes.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	recurringTodoRepo := dbadapter.NewRecurringTodoRepository(db)
	todoRepo := dbadapter.NewTodoRepository(db)
	errorLogRepo := dbadapter.NewErrorLogRepository(db)
	sweepService := service.NewSweepService(recurringTodoRepo, todoRepo, errorLogRepo, cfg.SweepRuleTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bound a whole pass so a stuck store call cannot hold the sweeper
	// forever; an aborted pass is retried at the next tick anyway.
	const sweepTimeout = 5 * time.Minute

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	spec := fmt.Sprintf("@every %s", cfg.SweepInterval)
	if _, err := c.AddFunc(spec, func() {
		sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
		defer cancel()

		report, err := sweepService.RunSweep(sweepCtx, time.Now().UTC())
		if err != nil {
			logger.Error("sweep run failed", zap.Error(err))
			return
		}
		if report.Errors > 0 {
			logger.Warn("sweep finished with errors",
				zap.Int("processed", report.Processed),
				zap.Int("errors", report.Errors),
				zap.Strings("failures", report.Failures))
		}
	}); err != nil {
		logger.Fatal("failed to schedule sweep", zap.Error(err))
	}

	logger.Info("sweeper started", zap.Duration("interval", cfg.SweepInterval))
	c.Start()

	<-ctx.Done()
	logger.Info("sweeper stopping")
	<-c.Stop().Done()
}
