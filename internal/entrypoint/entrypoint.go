package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pronunciationapp/backend/internal/config"
	"github.com/pronunciationapp/backend/internal/database"
	"github.com/pronunciationapp/backend/internal/entities"
	http_controllers "github.com/pronunciationapp/backend/internal/http"
	"github.com/pronunciationapp/backend/internal/logging"
	"github.com/pronunciationapp/backend/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests for up to the configured shutdown timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	logger := zap.L()
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	// SIGKILL can't be caught, so only SIGINT and SIGTERM are handled.
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	logger.Info("server exiting")
}

// Run wires the database, services and router from cfg and serves until
// interrupted.
func Run(cfg *config.Config, version string) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	logger.Info("starting pronunciation backend",
		zap.String("version", version),
		zap.String("database_driver", cfg.Database.Driver))

	gin.SetMode(cfg.HTTP.GinMode)

	db, err := database.NewFromConfig(cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	router := http_controllers.NewRouter(newRouterConfig(db, cfg, logger, version))

	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			logger.Error("closing database", zap.Error(err))
		}
	}

	Serve(router, cfg, onShutdown)
}

func newRouterConfig(db *database.Database, cfg *config.Config, logger *zap.Logger, version string) http_controllers.RouterConfig {
	return http_controllers.RouterConfig{
		Database:       db,
		Logger:         logger,
		Version:        version,
		Categories:     services.NewCategoryService(db.Categories),
		Levels:         services.NewLevelService(db.Levels, db.Words),
		Words:          services.NewWordService(db.Words),
		StageWords:     services.NewService[entities.StageWord](db.StageWords),
		GameProgress:   services.NewService[entities.GameProgress](db.GameProgress),
		Users:          services.NewUserService(db.Users, db.GameProgress, cfg.Users.BcryptCost),
		Pronunciations: services.NewService[entities.Pronunciation](db.Pronunciations),
	}
}
