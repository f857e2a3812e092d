package main

import (
	"famitodo/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "famitodo/internal/adapter/db"
	httpadapter "famitodo/internal/adapter/http"
	"famitodo/internal/adapter/http/handlers"
	httpmiddleware "famitodo/internal/adapter/http/middleware"
	"famitodo/internal/app/service"
	"famitodo/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageJa, translator.LanguageEn},
	})

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
	groupRepo := dbadapter.NewGroupRepository(db)
	errorLogRepo := dbadapter.NewErrorLogRepository(db)

	recurringTodoService := service.NewRecurringTodoService(recurringTodoRepo, groupRepo)
	todoService := service.NewTodoService(todoRepo)
	sweepService := service.NewSweepService(recurringTodoRepo, todoRepo, errorLogRepo, cfg.SweepRuleTimeout)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	healthHandler := handlers.NewHealthHandler(db)
	recurringTodoHandler := handlers.NewRecurringTodoHandler(recurringTodoService)
	todoHandler := handlers.NewTodoHandler(todoService)
	sweepHandler := handlers.NewSweepHandler(sweepService)
	httpadapter.RegisterRoutes(r, healthHandler, recurringTodoHandler, todoHandler, sweepHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
