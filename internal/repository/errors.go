package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrNotConfigured is returned by every repository method when the server
// was started without a database connection string. The status and init-db
// handlers translate it into setup guidance.
var ErrNotConfigured = errors.New("database not configured")
