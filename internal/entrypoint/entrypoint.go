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

	"github.com/bondopangaji/bookshelf-api/internal/catalog"
	"github.com/bondopangaji/bookshelf-api/internal/config"
	http_controllers "github.com/bondopangaji/bookshelf-api/internal/http"
	"github.com/bondopangaji/bookshelf-api/internal/logger"
)

// Serve runs the HTTP server until an interrupt arrives, then shuts
// down gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	log := logger.Get()

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info().
			Str("host", cfg.HTTP.Host).
			Int32("port", cfg.HTTP.Port).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// kill (no param) sends syscall.SIGTERM, kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server exiting")
}

// Run wires the logger, catalog and router together and serves the API.
// The catalog starts empty; all state lives in process memory.
func Run(cfg *config.Config, version string) {
	log := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: logger.ParseFormat(cfg.Log.Format),
	})
	log.Info().Str("version", version).Msg("starting bookshelf api")

	if cfg.HTTP.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := catalog.NewRepository()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog: repo,
		Counter: repo,
		Version: version,
	})

	Serve(router, cfg)
}
