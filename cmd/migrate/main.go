package main

import (
	"context"
	"log/slog"

	"github.com/animated-portfolio/backend/internal/config"
	"github.com/animated-portfolio/backend/internal/logging"
	"github.com/animated-portfolio/backend/internal/repository"
)

// migrate applies the contacts schema idempotently and prints table stats.
// It is the CLI twin of POST /api/init-db for operators with shell access.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config load failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	conn := cfg.ConnString()
	if conn == "" {
		logging.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, conn)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	repo := repository.NewPgContactRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logging.Fatal("schema creation failed", "error", err)
	}

	stats, err := repo.TableStats(ctx)
	if err != nil {
		logging.Fatal("stats query failed", "error", err)
	}

	slog.Info("schema ready",
		"table", "contacts",
		"total", stats.TotalContacts,
		"unread", stats.UnreadContacts,
	)
}
