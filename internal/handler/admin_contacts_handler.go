package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/animated-portfolio/backend/internal/model"
	"github.com/animated-portfolio/backend/internal/service"
	"github.com/animated-portfolio/backend/pkg/auth"
)

// AdminContactsHandler serves the admin inbox: paginated listing, mark-read
// and delete. Every method is gated by the bearer credential check.
type AdminContactsHandler struct {
	contactService service.ContactService
	creds          auth.Credentials
}

// NewAdminContactsHandler creates an AdminContactsHandler.
func NewAdminContactsHandler(contactService service.ContactService, creds auth.Credentials) *AdminContactsHandler {
	return &AdminContactsHandler{contactService: contactService, creds: creds}
}

// Handle dispatches /api/admin/contacts by method. Authentication is checked
// before anything else; failures reveal nothing beyond a generic message.
func (h *AdminContactsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.creds.Authorize(r.Header.Get("Authorization")) {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid admin credentials")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.action(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		methodNotAllowed(w, "Only GET, POST, and DELETE methods are supported")
	}
}

type listResponse struct {
	Success    bool               `json:"success"`
	Contacts   []*model.Contact   `json:"contacts"`
	Pagination model.Pagination   `json:"pagination"`
	Stats      model.ContactStats `json:"stats"`
}

// list handles GET with ?page= and ?limit= query parameters.
func (h *AdminContactsHandler) list(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := service.DefaultPageLimit
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	inbox, err := h.contactService.List(r.Context(), page, limit)
	if err != nil {
		slog.Error("admin contact list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to process request")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Contacts:   inbox.Contacts,
		Pagination: inbox.Pagination,
		Stats:      inbox.Stats,
	})
}

// actionRequest is the expected JSON body for POST actions.
type actionRequest struct {
	Action    string `json:"action"`
	ContactID int64  `json:"contactId"`
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// action handles POST {action, contactId}: mark_read or delete.
func (h *AdminContactsHandler) action(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	if req.Action == "" || req.ContactID == 0 {
		writeError(w, http.StatusBadRequest, "Bad Request", "Action and contactId are required")
		return
	}

	switch req.Action {
	case "mark_read":
		if err := h.contactService.MarkRead(r.Context(), req.ContactID); err != nil {
			slog.Error("mark read failed", "error", err, "contact_id", req.ContactID)
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to process request")
			return
		}
		writeJSON(w, http.StatusOK, actionResponse{Success: true, Message: "Contact marked as read"})

	case "delete":
		if err := h.contactService.Delete(r.Context(), req.ContactID); err != nil {
			slog.Error("contact delete failed", "error", err, "contact_id", req.ContactID)
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to process request")
			return
		}
		writeJSON(w, http.StatusOK, actionResponse{Success: true, Message: "Contact deleted successfully"})

	default:
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid action. Supported actions: mark_read, delete")
	}
}

// delete handles DELETE with an ?id= query parameter. Deleting an absent ID
// still reports success, matching the underlying store semantics.
func (h *AdminContactsHandler) delete(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if raw == "" || err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Contact ID is required")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		slog.Error("contact delete failed", "error", err, "contact_id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to process request")
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true, Message: "Contact deleted successfully"})
}
