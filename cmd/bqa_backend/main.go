package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/SscSPs/budget_query_app/internal/adapters/budgetapi"
	"github.com/SscSPs/budget_query_app/internal/core/services"
	"github.com/SscSPs/budget_query_app/internal/handlers"
	"github.com/SscSPs/budget_query_app/internal/middleware"
	"github.com/SscSPs/budget_query_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title BQA Backend API
// @version 1.0
// @description Read-only query API over an external personal budgeting service.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Outbound client for the budget service
	budgetClient := budgetapi.NewClient(
		cfg.BudgetAPIBaseURL,
		cfg.BudgetAPIToken,
		budgetapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClientTimeout}),
	)

	serviceContainer := services.NewServiceContainer(cfg, budgetClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
