package repository

import (
	"context"

	"github.com/animated-portfolio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions. Implementations must make Add assign the new ID and creation
// timestamp, and must treat MarkRead and Delete of an absent ID as a no-op
// success.
type ContactRepository interface {
	// Add inserts a new contact and populates c.ID and c.CreatedAt from
	// the database.
	Add(ctx context.Context, c *model.Contact) error

	// List returns contacts ordered by creation time descending.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)

	// GetByID returns one contact, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Contact, error)

	// MarkRead sets the read flag. Idempotent.
	MarkRead(ctx context.Context, id int64) error

	// Delete removes a contact. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of stored contacts.
	Count(ctx context.Context) (int, error)

	// CountUnread returns the number of contacts with is_read = false.
	CountUnread(ctx context.Context) (int, error)
}
