package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/animated-portfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
// It also carries the schema-bootstrap and diagnostics queries used by the
// init-db and status handlers.
//
// A nil pool is a valid state: it means no database was configured, and every
// method returns ErrNotConfigured. This lets the server start without a
// connection string and still serve setup guidance.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given
// pool, which may be nil when no database is configured.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Configured reports whether a database connection is available.
func (r *PgContactRepository) Configured() bool { return r.pool != nil }

// Add inserts a new contacts row and populates c.ID and c.CreatedAt from the
// RETURNING clause. An empty phone is stored as NULL.
func (r *PgContactRepository) Add(ctx context.Context, c *model.Contact) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, subject, message, source)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Source,
	).Scan(&c.ID, &c.CreatedAt)
}

const contactColumns = `id, name, email, COALESCE(phone, ''), COALESCE(subject, ''),
	message, created_at, is_read, COALESCE(source, '')`

// List returns contacts ordered by creation time descending, paginated by
// limit/offset.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+`
		 FROM contacts
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject,
			&c.Message, &c.CreatedAt, &c.IsRead, &c.Source); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// GetByID returns one contact by ID, or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject,
		&c.Message, &c.CreatedAt, &c.IsRead, &c.Source)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkRead sets is_read = true. Marking an already-read or absent contact is
// a no-op success.
func (r *PgContactRepository) MarkRead(ctx context.Context, id int64) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	_, err := r.pool.Exec(ctx, `UPDATE contacts SET is_read = true WHERE id = $1`, id)
	return err
}

// Delete removes a contact. Deleting an absent ID succeeds.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	return err
}

// Count returns the total number of contacts.
func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, ErrNotConfigured
	}
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}

// CountUnread returns the number of contacts with is_read = false.
func (r *PgContactRepository) CountUnread(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, ErrNotConfigured
	}
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE is_read = false`).Scan(&n)
	return n, err
}

// Ping verifies database connectivity.
func (r *PgContactRepository) Ping(ctx context.Context) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	return r.pool.Ping(ctx)
}

// EnsureSchema idempotently creates the contacts table and its indexes.
// Safe to invoke repeatedly.
func (r *PgContactRepository) EnsureSchema(ctx context.Context) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contacts (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50),
			subject VARCHAR(255),
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			is_read BOOLEAN DEFAULT false,
			source VARCHAR(100) DEFAULT 'portfolio'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_is_read ON contacts (is_read)`,
	}
	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// TableExists reports whether the contacts table is present.
func (r *PgContactRepository) TableExists(ctx context.Context) (bool, error) {
	if r.pool == nil {
		return false, ErrNotConfigured
	}
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'contacts'`,
	).Scan(&n)
	return n > 0, err
}

// Columns returns the contacts table's column metadata in ordinal order.
func (r *PgContactRepository) Columns(ctx context.Context) ([]model.ColumnInfo, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}
	rows, err := r.pool.Query(ctx,
		`SELECT table_name, column_name, data_type
		 FROM information_schema.columns
		 WHERE table_name = 'contacts'
		 ORDER BY ordinal_position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []model.ColumnInfo
	for rows.Next() {
		var c model.ColumnInfo
		if err := rows.Scan(&c.TableName, &c.ColumnName, &c.DataType); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// TableStats returns aggregate counters over the contacts table.
func (r *PgContactRepository) TableStats(ctx context.Context) (*model.TableStats, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}
	var s model.TableStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE is_read = false),
		        MIN(created_at),
		        MAX(created_at)
		 FROM contacts`,
	).Scan(&s.TotalContacts, &s.UnreadContacts, &s.FirstContact, &s.LatestContact)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ServerInfo returns the database server time and a short version string
// (product and release, e.g. "PostgreSQL 16.2").
func (r *PgContactRepository) ServerInfo(ctx context.Context) (time.Time, string, error) {
	if r.pool == nil {
		return time.Time{}, "", ErrNotConfigured
	}
	var now time.Time
	var version string
	if err := r.pool.QueryRow(ctx, `SELECT NOW(), version()`).Scan(&now, &version); err != nil {
		return time.Time{}, "", err
	}
	if parts := strings.Fields(version); len(parts) >= 2 {
		version = parts[0] + " " + parts[1]
	}
	return now, version, nil
}
