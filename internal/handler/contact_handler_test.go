package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/animated-portfolio/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc   func(ctx context.Context, req *service.SubmitRequest) (int64, error)
	listFunc     func(ctx context.Context, page, limit int) (*service.InboxPage, error)
	markReadFunc func(ctx context.Context, id int64) error
	deleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockContactService) Submit(ctx context.Context, req *service.SubmitRequest) (int64, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, req)
	}
	return 1, nil
}

func (m *mockContactService) List(ctx context.Context, page, limit int) (*service.InboxPage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, limit)
	}
	return &service.InboxPage{}, nil
}

func (m *mockContactService) MarkRead(ctx context.Context, id int64) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockContactService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *service.SubmitRequest
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, req *service.SubmitRequest) (int64, error) {
			captured = req
			return 42, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Jane Doe","email":"jane@ex.com","message":"Hello, I need help with a project."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called, got nil")
	}
	if captured.Email != "jane@ex.com" {
		t.Errorf("expected email=jane@ex.com, got %q", captured.Email)
	}

	var resp struct {
		Success   bool   `json:"success"`
		ContactID int64  `json:"contactId"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.ContactID != 42 {
		t.Errorf("expected contactId=42, got %d", resp.ContactID)
	}
	if resp.Message == "" {
		t.Error("expected a confirmation message")
	}
}

func TestContactHandler_Submit_ValidationError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, req *service.SubmitRequest) (int64, error) {
			return 0, &service.ValidationError{Code: "Invalid email", Message: "Please provide a valid email address"}
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Bob","email":"not-an-email","message":"A long enough message."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Error != "Invalid email" {
		t.Errorf("expected error=Invalid email, got %q", resp.Error)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, req *service.SubmitRequest) (int64, error) {
			return 0, errors.New("db connection lost")
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Bob","email":"bob@example.com","message":"A long enough message."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}

	var resp errorResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if strings.Contains(resp.Message, "db connection") {
		t.Error("500 response must not leak the underlying error")
	}
}

func TestContactHandler_Submit_MethodNotAllowed(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET, got %d", rec.Code)
	}

	var resp errorResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Error != "Method not allowed" {
		t.Errorf("expected error=Method not allowed, got %q", resp.Error)
	}
}
