package service

import (
	"context"

	"github.com/animated-portfolio/backend/internal/model"
)

// SubmitRequest is a raw contact-form payload before validation and
// sanitization.
type SubmitRequest struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Source  string
}

// InboxPage is one page of the admin inbox listing.
type InboxPage struct {
	Contacts   []*model.Contact
	Pagination model.Pagination
	Stats      model.ContactStats
}

// ContactService defines the business logic around contact submissions.
type ContactService interface {
	// Submit validates, sanitizes and stores a submission, returning the
	// new contact's ID. Rejections are reported as *ValidationError.
	Submit(ctx context.Context, req *SubmitRequest) (int64, error)

	// List returns one page of the inbox, newest first, along with
	// pagination metadata and unread counters.
	List(ctx context.Context, page, limit int) (*InboxPage, error)

	// MarkRead sets a contact's read flag. Idempotent.
	MarkRead(ctx context.Context, id int64) error

	// Delete removes a contact. Deleting an absent ID succeeds.
	Delete(ctx context.Context, id int64) error
}
