package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/animated-portfolio/backend/internal/service"
)

// ContactHandler handles public contact-form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

type submitResponse struct {
	Success   bool   `json:"success"`
	ContactID int64  `json:"contactId"`
	Message   string `json:"message"`
}

// Submit handles POST /api/contact. Validation failures each return a
// distinct 400; storage failures collapse into one generic 500.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "Only POST requests are allowed")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return
	}

	id, err := h.contactService.Submit(r.Context(), &service.SubmitRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Source:  req.Source,
	})
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			writeError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		slog.Error("contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error",
			"Failed to process contact form. Please try again later.")
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success:   true,
		ContactID: id,
		Message:   "Contact form submitted successfully! We will get back to you soon.",
	})
}
