package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"monopoly-backend/internal/broadcast"
	"monopoly-backend/internal/config"
	httpHandler "monopoly-backend/internal/delivery/http"
	"monopoly-backend/internal/gamelock"
	"monopoly-backend/internal/logger"
	"monopoly-backend/internal/store"
	"monopoly-backend/internal/validation"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(&cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Shutdown()

	if err := validation.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", zap.Error(err))
		os.Exit(1)
	}

	// One Redis client backs both the snapshot store and the broadcast
	// hub's pub/sub relay: the key-value store is the sole cross-process
	// authority, per spec.md §5, so there is exactly one Redis target.
	storeClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.StoreHost, cfg.StorePort),
	})
	defer storeClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := storeClient.Ping(ctx).Result(); err != nil {
		logger.Error("failed to connect to store", zap.Error(err))
		os.Exit(1)
	}

	gameStore := store.NewRedisStore(storeClient)
	locks := gamelock.NewRegistry()
	hub := broadcast.NewHub(storeClient)
	go hub.Run(ctx)

	go runCleanupSweep(ctx, gameStore)

	gameHandler := httpHandler.NewGameHandler(gameStore, locks, hub)
	router := httpHandler.NewRouter(gameHandler, hub, cfg.CORSOriginPattern)

	addr := fmt.Sprintf("%s:%s", cfg.WSHost, cfg.WSPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("monopoly server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}

// runCleanupSweep periodically prunes stale index entries from the
// store so the game-listing endpoint never reports expired games.
func runCleanupSweep(ctx context.Context, s store.Store) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pruned, err := s.CleanupInactive(ctx)
			if err != nil {
				logger.Warn("cleanup sweep failed", zap.Error(err))
				continue
			}
			if pruned > 0 {
				logger.Info("cleanup sweep pruned stale games", zap.Int("count", pruned))
			}
		}
	}
}
