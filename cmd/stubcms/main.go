package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-core/internal/catalog"
	"storefront-core/internal/config"
	"storefront-core/internal/db"
	"storefront-core/internal/httpserver"
	"storefront-core/internal/storage"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[stubcms] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	backend := pickBackend(ctx, cfg, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog: catalog.New(catalog.Fixtures()),
		Tickets: httpserver.NewTicketStore(backend, logger),
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting stub cms on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// pickBackend chooses the ticket persistence backend: redis when configured,
// then postgres, then in-process memory so the stub still runs standalone.
func pickBackend(ctx context.Context, cfg config.Config, logger *log.Logger) storage.Store {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("connect redis: %v", err)
		}
		logger.Printf("tickets backed by redis at %s", cfg.RedisAddr)
		return storage.NewRedis(client)
	}
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Printf("postgres unavailable (%v), falling back to memory backend", err)
		return storage.NewMemory()
	}
	logger.Printf("tickets backed by postgres")
	return storage.NewPostgres(pool)
}
