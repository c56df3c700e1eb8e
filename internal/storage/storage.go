// Package storage abstracts uploaded-file persistence. The local filesystem
// implementation can be swapped for a hosted object store without touching
// the upload handler.
package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files under hierarchical keys.
type Storage interface {
	// Save stores the file under key (e.g. "public/image/<filename>") and
	// returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
