package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xgencloud/xgen-site/config"
	httpx "github.com/xgencloud/xgen-site/internal/http"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB
	Logger   *slog.Logger
}

// StartHTTPServer builds the router and starts the server in the
// background. Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	routerServices := httpx.RouterServices{
		Auth:    cfg.Services.Auth,
		Contact: cfg.Services.Contact,
		Catalog: cfg.Services.Catalog,
		HTTP:    cfg.Config.HTTP,
		Logger:  logger,
	}
	if cfg.DB != nil {
		db := cfg.DB
		routerServices.DB = httpx.PingerFunc(func(ctx context.Context) error {
			return db.PingContext(ctx)
		})
	}
	if cfg.Services.Cache != nil {
		routerServices.Cache = cfg.Services.Cache
	}

	handler, err := httpx.NewRouter(routerServices)
	if err != nil {
		return nil, err
	}

	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":8001"
	}
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", serveErr)
		}
	}()
	return server, nil
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then drains the server.
func WaitForShutdown(server *http.Server, logger *slog.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.Info("shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
