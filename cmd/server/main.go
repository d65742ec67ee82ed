package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/config"
	"github.com/hongminglow/megasena-be/internal/server"
	"github.com/hongminglow/megasena-be/internal/storage"
	"github.com/hongminglow/megasena-be/internal/storage/memory"
	postgres "github.com/hongminglow/megasena-be/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		fatal("load config", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		fatal("init storage", err)
	}
	defer store.Close()

	revoked, closeRevoked, err := openRevocationList(ctx, cfg)
	if err != nil {
		fatal("init revocation list", err)
	}
	defer closeRevoked()

	srv := server.New(cfg, store, revoked)

	go func() {
		slog.Info("megasena backend listening", slog.String("addr", cfg.HTTPAddress()), slog.String("storage", cfg.StorageDriver))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("http server error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		slog.Error("graceful shutdown error", slog.Any("error", err))
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.StorageDriver == config.StorageMemory {
		slog.Warn("using in-memory storage; data is lost on restart")
		return memory.NewStore(), nil
	}
	return postgres.NewStore(ctx, cfg.DatabaseURL)
}

// openRevocationList prefers Redis so logouts survive restarts and expire
// with their tokens; without REDIS_URL it falls back to process memory.
func openRevocationList(ctx context.Context, cfg config.Config) (auth.RevocationList, func(), error) {
	if cfg.RedisURL == "" {
		slog.Warn("REDIS_URL not set; revoked tokens are kept in memory")
		return auth.NewMemoryRevocationList(), func() {}, nil
	}
	client, err := auth.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return auth.NewRedisRevocationList(client), func() { _ = client.Close() }, nil
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; relying on existing environment")
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, slog.Any("error", err))
	os.Exit(1)
}
