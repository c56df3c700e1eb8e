package service

import (
	"context"
	"strings"

	"github.com/animated-portfolio/backend/internal/model"
	"github.com/animated-portfolio/backend/internal/repository"
)

const (
	minMessageLength = 10
	maxMessageLength = 2000

	// maxFieldLength caps every sanitized string field.
	maxFieldLength = 1000

	defaultSubject = "Contact Form Submission"
	defaultSource  = "animated-portfolio"

	// DefaultPageLimit is the canonical admin-inbox page size.
	DefaultPageLimit = 20
	maxPageLimit     = 100
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// sanitize trims the input and truncates it to maxFieldLength runes.
func sanitize(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) > maxFieldLength {
		r = r[:maxFieldLength]
	}
	return string(r)
}

// Submit validates the raw payload against the rule chain, then sanitizes it
// and stores the result. Optional fields get their fixed defaults.
func (s *contactServiceImpl) Submit(ctx context.Context, req *SubmitRequest) (int64, error) {
	if verr := validateSubmit(req); verr != nil {
		return 0, verr
	}

	c := &model.Contact{
		Name:    sanitize(req.Name),
		Email:   strings.ToLower(sanitize(req.Email)),
		Phone:   sanitize(req.Phone),
		Subject: sanitize(req.Subject),
		Message: sanitize(req.Message),
		Source:  strings.TrimSpace(req.Source),
	}
	if c.Subject == "" {
		c.Subject = defaultSubject
	}
	if c.Source == "" {
		c.Source = defaultSource
	}

	if err := s.repo.Add(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// List returns one inbox page plus pagination metadata and counters.
// page < 1 becomes 1; limit defaults to DefaultPageLimit and is capped at 100.
func (s *contactServiceImpl) List(ctx context.Context, page, limit int) (*InboxPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	contacts, err := s.repo.List(ctx, model.ContactListOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	return &InboxPage{
		Contacts: contacts,
		Pagination: model.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
		Stats: model.ContactStats{Total: total, Unread: unread},
	}, nil
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
