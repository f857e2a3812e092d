package http

import (
	"famitodo/internal/adapter/http/handlers"
	"famitodo/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	recurringTodoHandler *handlers.RecurringTodoHandler,
	todoHandler *handlers.TodoHandler,
	sweepHandler *handlers.SweepHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/todos", todoHandler.CreateTodo)
		api.POST("/recurring-todos", recurringTodoHandler.Create)
		api.GET("/recurring-todos/:id", recurringTodoHandler.Get)
		api.PATCH("/recurring-todos/:id", recurringTodoHandler.Update)
		api.POST("/recurring-todos/:id/toggle", recurringTodoHandler.Toggle)
		api.DELETE("/recurring-todos/:id", recurringTodoHandler.Delete)
		api.GET("/groups/:id/recurring-todos", recurringTodoHandler.ListByGroup)
	}

	// Cron-facing surface, kept off /api: no language negotiation, no
	// translated errors.
	internal := r.Group("/internal")
	{
		internal.POST("/sweep", sweepHandler.Run)
	}
}
