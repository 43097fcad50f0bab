// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodverse-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/moodverse-backend/internal/app"
	"github.com/heartmarshall/moodverse-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	deleted, err := token.New(pool).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("cleanup tokens completed",
		slog.Int("deleted", deleted),
		slog.Time("before", now),
	)
}
