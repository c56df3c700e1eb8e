package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/animated-portfolio/backend/internal/config"
	"github.com/animated-portfolio/backend/internal/model"
	"github.com/animated-portfolio/backend/pkg/auth"
)

// SchemaStore is the slice of the contacts store the init-db handler needs.
type SchemaStore interface {
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Columns(ctx context.Context) ([]model.ColumnInfo, error)
	TableStats(ctx context.Context) (*model.TableStats, error)
}

// InitDBHandler exposes idempotent schema bootstrap as an admin endpoint.
// Unlike the public surfaces it reports underlying error text and remediation
// steps: it is an operator-facing setup tool.
type InitDBHandler struct {
	store SchemaStore
	cfg   *config.Config
	creds auth.Credentials
}

// NewInitDBHandler creates an InitDBHandler.
func NewInitDBHandler(store SchemaStore, cfg *config.Config, creds auth.Credentials) *InitDBHandler {
	return &InitDBHandler{store: store, cfg: cfg, creds: creds}
}

// envCheck reports which configuration values are present, never the values
// themselves.
type envCheck struct {
	DatabaseURL       bool `json:"database_url"`
	DatabaseURLDirect bool `json:"database_url_direct"`
	AdminEmail        bool `json:"admin_email"`
	AdminSecret       bool `json:"admin_secret"`
}

func (h *InitDBHandler) presence() envCheck {
	return envCheck{
		DatabaseURL:       h.cfg.DatabaseURL != "",
		DatabaseURLDirect: h.cfg.DirectDatabaseURL != "",
		AdminEmail:        h.cfg.AdminEmail != "",
		AdminSecret:       h.cfg.AdminSecret != "",
	}
}

type databaseInfo struct {
	Connection    string             `json:"connection"`
	TablesCreated []string           `json:"tables_created"`
	Columns       []model.ColumnInfo `json:"columns"`
	Stats         *model.TableStats  `json:"stats"`
}

type initDBResponse struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message"`
	DatabaseInfo     databaseInfo `json:"database_info"`
	EnvironmentCheck envCheck     `json:"environment_check"`
}

type initDBFailure struct {
	Error           string   `json:"error"`
	Message         string   `json:"message"`
	EnvCheck        envCheck `json:"environment_check"`
	Troubleshooting []string `json:"troubleshooting,omitempty"`
	SetupSteps      []string `json:"setup_instructions,omitempty"`
}

// Handle serves POST /api/init-db.
func (h *InitDBHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "Only POST requests are allowed")
		return
	}

	if !h.creds.Authorize(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid admin credentials")
		return
	}

	if h.cfg.ConnString() == "" {
		writeJSON(w, http.StatusInternalServerError, initDBFailure{
			Error:    "Database not configured",
			Message:  "No database connection string found. Please provision a Postgres database.",
			EnvCheck: h.presence(),
			SetupSteps: []string{
				"1. Provision a Postgres database (e.g. Neon)",
				"2. Set DATABASE_URL (and optionally DATABASE_URL_DIRECT) in the environment",
				"3. Restart the server",
				"4. Invoke POST /api/init-db again",
			},
		})
		return
	}

	ctx := r.Context()
	if err := h.store.Ping(ctx); err != nil {
		h.fail(w, err)
		return
	}

	if err := h.store.EnsureSchema(ctx); err != nil {
		h.fail(w, err)
		return
	}

	columns, err := h.store.Columns(ctx)
	if err != nil {
		h.fail(w, err)
		return
	}
	stats, err := h.store.TableStats(ctx)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, initDBResponse{
		Success: true,
		Message: "Database initialized successfully!",
		DatabaseInfo: databaseInfo{
			Connection:    "OK",
			TablesCreated: []string{"contacts"},
			Columns:       columns,
			Stats:         stats,
		},
		EnvironmentCheck: h.presence(),
	})
}

func (h *InitDBHandler) fail(w http.ResponseWriter, err error) {
	slog.Error("database initialization failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, initDBFailure{
		Error:    "Database initialization failed",
		Message:  err.Error(),
		EnvCheck: h.presence(),
		Troubleshooting: []string{
			"1. Verify the database is reachable from this host",
			"2. Check that DATABASE_URL is set correctly",
			"3. Check the database user's DDL privileges",
			"4. Check the server logs for detailed errors",
		},
	})
}
