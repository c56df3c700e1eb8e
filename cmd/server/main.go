package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/animated-portfolio/backend/internal/config"
	"github.com/animated-portfolio/backend/internal/handler"
	"github.com/animated-portfolio/backend/internal/logging"
	"github.com/animated-portfolio/backend/internal/repository"
	"github.com/animated-portfolio/backend/internal/service"
	"github.com/animated-portfolio/backend/internal/storage"
	"github.com/animated-portfolio/backend/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config load failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	// The server starts without a database so the status and init-db
	// endpoints can still report setup guidance. Schema creation is never
	// implicit; it happens via POST /api/init-db or cmd/migrate.
	var contactRepo *repository.PgContactRepository
	if conn := cfg.ConnString(); conn != "" {
		pool, err := repository.NewPool(context.Background(), conn)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		contactRepo = repository.NewPgContactRepository(pool)
	} else {
		slog.Warn("no database configured; contact storage is unavailable")
		contactRepo = repository.NewPgContactRepository(nil)
	}

	contactService := service.NewContactService(contactRepo)
	creds := auth.Credentials{Email: cfg.AdminEmail, Secret: cfg.AdminSecret}
	uploadStore := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)

	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminContactsHandler(contactService, creds)
	initDBHandler := handler.NewInitDBHandler(contactRepo, cfg, creds)
	statusHandler := handler.NewStatusHandler(contactRepo, cfg)
	uploadHandler := handler.NewUploadHandler(uploadStore, creds)

	rl := handler.NewRateLimiter(cfg.ContactRateLimit)

	mux := http.NewServeMux()
	mux.Handle("/api/contact", rl.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.HandleFunc("/api/admin/contacts", adminHandler.Handle)
	mux.HandleFunc("/api/init-db", initDBHandler.Handle)
	mux.HandleFunc("/api/status", statusHandler.Handle)
	mux.HandleFunc("/api/upload", uploadHandler.Handle)
	mux.Handle("/uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(cfg.UploadDir))))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(handler.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
