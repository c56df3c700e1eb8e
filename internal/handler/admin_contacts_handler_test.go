package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/animated-portfolio/backend/internal/model"
	"github.com/animated-portfolio/backend/internal/service"
	"github.com/animated-portfolio/backend/pkg/auth"
)

var testCreds = auth.Credentials{Email: "admin@example.com", Secret: "s3cret"}

const testBearer = "Bearer admin@example.com:s3cret"

func adminRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", testBearer)
	return req
}

func TestAdminContactsHandler_Unauthorized(t *testing.T) {
	h := NewAdminContactsHandler(&mockContactService{}, testCreds)

	headers := []string{
		"",
		"Bearer wrong@example.com:s3cret",
		"Bearer admin@example.com:wrong",
		"Bearer admin@example.com",
		"Basic admin@example.com:s3cret",
	}
	for _, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?page=1", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAdminContactsHandler_List(t *testing.T) {
	var gotPage, gotLimit int
	mock := &mockContactService{
		listFunc: func(ctx context.Context, page, limit int) (*service.InboxPage, error) {
			gotPage, gotLimit = page, limit
			return &service.InboxPage{
				Contacts: []*model.Contact{
					{ID: 2, Name: "Jane Doe", Email: "jane@ex.com", CreatedAt: time.Now()},
					{ID: 1, Name: "John Doe", Email: "john@ex.com", CreatedAt: time.Now()},
				},
				Pagination: model.Pagination{Page: 1, Limit: 20, Total: 2, Pages: 1},
				Stats:      model.ContactStats{Total: 2, Unread: 2},
			}, nil
		},
	}
	h := NewAdminContactsHandler(mock, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodGet, "/api/admin/contacts?page=1&limit=20", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if gotPage != 1 || gotLimit != 20 {
		t.Errorf("expected page=1 limit=20 passed through, got %d/%d", gotPage, gotLimit)
	}

	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if len(resp.Contacts) != 2 {
		t.Errorf("expected 2 contacts, got %d", len(resp.Contacts))
	}
	if resp.Pagination.Pages != 1 {
		t.Errorf("expected pages=1, got %d", resp.Pagination.Pages)
	}
	if resp.Stats.Unread != 2 {
		t.Errorf("expected unread=2, got %d", resp.Stats.Unread)
	}
}

func TestAdminContactsHandler_List_IgnoresBadQueryValues(t *testing.T) {
	var gotPage, gotLimit int
	mock := &mockContactService{
		listFunc: func(ctx context.Context, page, limit int) (*service.InboxPage, error) {
			gotPage, gotLimit = page, limit
			return &service.InboxPage{Contacts: []*model.Contact{}}, nil
		},
	}
	h := NewAdminContactsHandler(mock, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodGet, "/api/admin/contacts?page=abc&limit=-5", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotPage != 1 {
		t.Errorf("expected bad page to fall back to 1, got %d", gotPage)
	}
	if gotLimit != service.DefaultPageLimit {
		t.Errorf("expected bad limit to fall back to %d, got %d", service.DefaultPageLimit, gotLimit)
	}
}

func TestAdminContactsHandler_MarkRead(t *testing.T) {
	var markedID int64
	mock := &mockContactService{
		markReadFunc: func(ctx context.Context, id int64) error {
			markedID = id
			return nil
		},
	}
	h := NewAdminContactsHandler(mock, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodPost, "/api/admin/contacts", `{"action":"mark_read","contactId":7}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if markedID != 7 {
		t.Errorf("expected contact 7 marked, got %d", markedID)
	}

	var resp actionResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Success || resp.Message != "Contact marked as read" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAdminContactsHandler_DeleteAction(t *testing.T) {
	var deletedID int64
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := NewAdminContactsHandler(mock, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodPost, "/api/admin/contacts", `{"action":"delete","contactId":9}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != 9 {
		t.Errorf("expected contact 9 deleted, got %d", deletedID)
	}
}

func TestAdminContactsHandler_Action_MissingFields(t *testing.T) {
	h := NewAdminContactsHandler(&mockContactService{}, testCreds)

	bodies := []string{
		`{"contactId":7}`,
		`{"action":"mark_read"}`,
		`{}`,
	}
	for _, body := range bodies {
		rec := httptest.NewRecorder()
		h.Handle(rec, adminRequest(http.MethodPost, "/api/admin/contacts", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAdminContactsHandler_Action_Unknown(t *testing.T) {
	h := NewAdminContactsHandler(&mockContactService{}, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodPost, "/api/admin/contacts", `{"action":"archive","contactId":7}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp.Message, "mark_read, delete") {
		t.Errorf("expected message listing supported actions, got %q", resp.Message)
	}
}

func TestAdminContactsHandler_DeleteByQuery(t *testing.T) {
	var deletedID int64
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := NewAdminContactsHandler(mock, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodDelete, "/api/admin/contacts?id=11", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != 11 {
		t.Errorf("expected contact 11 deleted, got %d", deletedID)
	}
}

func TestAdminContactsHandler_DeleteByQuery_MissingID(t *testing.T) {
	h := NewAdminContactsHandler(&mockContactService{}, testCreds)

	for _, target := range []string{"/api/admin/contacts", "/api/admin/contacts?id=abc"} {
		rec := httptest.NewRecorder()
		h.Handle(rec, adminRequest(http.MethodDelete, target, ""))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("target %s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestAdminContactsHandler_MethodNotAllowed(t *testing.T) {
	h := NewAdminContactsHandler(&mockContactService{}, testCreds)

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest(http.MethodPut, "/api/admin/contacts", "{}"))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for PUT, got %d", rec.Code)
	}
}
