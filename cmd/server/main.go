package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "github.com/payroute/payroute-backend/internal/adapter/http"
	"github.com/payroute/payroute-backend/internal/adapter/repository/postgres"
	"github.com/payroute/payroute-backend/internal/config"
	"github.com/payroute/payroute-backend/internal/logging"
	"github.com/payroute/payroute-backend/internal/usecase/planner"
)

func main() {
	// 1. Logger
	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	// 2. Configuration
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// 3. Database and repositories
	db, err := postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	decisionRepo := postgres.NewDecisionRepository(db)

	// 4. Services (Use Cases)
	planService := planner.NewRoutePlanService(logger, decisionRepo)

	// 5. HTTP router
	router := gin.Default()

	baseHandler := httpadapter.NewBaseHandler(logger)
	baseHandler.RegisterRoutes(router)

	api := router.Group("/api/v1")
	api.Use(httpadapter.Auth(cfg.APIToken))
	api.Use(httpadapter.Metrics())

	routeHandler := httpadapter.NewRouteHandler(logger, planService)
	routeHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine to allow signal handling
	go func() {
		logger.Info("route planning API started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownGraceSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
