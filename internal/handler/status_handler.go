package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/animated-portfolio/backend/internal/config"
	"github.com/animated-portfolio/backend/internal/repository"
)

// StatusStore is the slice of the contacts store the status probe needs.
type StatusStore interface {
	Ping(ctx context.Context) error
	ServerInfo(ctx context.Context) (time.Time, string, error)
	TableExists(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int, error)
}

// StatusHandler is the unauthenticated health/diagnostics probe. Read-only,
// no side effects.
type StatusHandler struct {
	store StatusStore
	cfg   *config.Config
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(store StatusStore, cfg *config.Config) *StatusHandler {
	return &StatusHandler{store: store, cfg: cfg}
}

type databaseStatus struct {
	Connection      string     `json:"connection"` // OK | NO_DATABASE_URL | ERROR
	Error           string     `json:"error,omitempty"`
	ServerTime      *time.Time `json:"server_time,omitempty"`
	PostgresVersion string     `json:"postgres_version,omitempty"`
	TablesExist     bool       `json:"tables_exist"`
	ContactsCount   *int       `json:"contacts_count,omitempty"`
}

type statusResponse struct {
	Status               string         `json:"status"`
	Timestamp            time.Time      `json:"timestamp"`
	Environment          string         `json:"environment"`
	Region               string         `json:"region"`
	APIWorking           bool           `json:"api_working"`
	EnvironmentVariables envCheck       `json:"environment_variables"`
	Database             databaseStatus `json:"database"`
	Recommendations      []string       `json:"recommendations"`
}

// Handle serves GET /api/status.
func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "Only GET requests are allowed")
		return
	}

	resp := statusResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.Environment,
		Region:      h.cfg.Region,
		APIWorking:  true,
		EnvironmentVariables: envCheck{
			DatabaseURL:       h.cfg.DatabaseURL != "",
			DatabaseURLDirect: h.cfg.DirectDatabaseURL != "",
			AdminEmail:        h.cfg.AdminEmail != "",
			AdminSecret:       h.cfg.AdminSecret != "",
		},
		Database: h.checkDatabase(r.Context()),
	}
	resp.Recommendations = recommendations(resp.Database)

	writeJSON(w, http.StatusOK, resp)
}

func (h *StatusHandler) checkDatabase(ctx context.Context) databaseStatus {
	if h.cfg.ConnString() == "" {
		return databaseStatus{
			Connection: "NO_DATABASE_URL",
			Error:      "No database connection string found",
		}
	}

	serverTime, version, err := h.store.ServerInfo(ctx)
	if errors.Is(err, repository.ErrNotConfigured) {
		return databaseStatus{
			Connection: "NO_DATABASE_URL",
			Error:      "No database connection string found",
		}
	}
	if err != nil {
		return databaseStatus{Connection: "ERROR", Error: err.Error()}
	}

	db := databaseStatus{
		Connection:      "OK",
		ServerTime:      &serverTime,
		PostgresVersion: version,
	}

	exists, err := h.store.TableExists(ctx)
	if err != nil {
		slog.Warn("contacts table check failed", "error", err)
		return db
	}
	db.TablesExist = exists

	if exists {
		if count, err := h.store.Count(ctx); err == nil {
			db.ContactsCount = &count
		} else {
			slog.Warn("contacts count failed", "error", err)
		}
	}
	return db
}

func recommendations(db databaseStatus) []string {
	switch {
	case db.Connection != "OK":
		return []string{
			"Set DATABASE_URL in the environment",
			"Ensure the Postgres instance is reachable from this host",
			"Restart the server after adding the connection string",
		}
	case db.TablesExist:
		return []string{"Database is ready! Admin panel should work."}
	default:
		return []string{
			"Database connected but tables missing.",
			"Run POST /api/init-db to create tables.",
		}
	}
}
