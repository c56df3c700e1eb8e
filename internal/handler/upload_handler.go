package handler

import (
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/animated-portfolio/backend/internal/storage"
	"github.com/animated-portfolio/backend/pkg/auth"
)

const maxUploadSize = 10 << 20 // 10 MiB

// uploadAllowlist maps a type tag to the MIME types it accepts. An unknown
// tag falls back to the general list.
var uploadAllowlist = map[string][]string{
	"image": {"image/jpeg", "image/png", "image/gif", "image/webp"},
	"document": {
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	},
	"general": {"image/jpeg", "image/png", "image/gif", "image/webp", "application/pdf", "text/plain"},
}

// UploadHandler stores a single uploaded file and returns its public URL.
//
// The bearer credential only selects the "admin" vs "public" key namespace;
// it does not gate the upload capability itself. That is namespacing, not
// access control.
type UploadHandler struct {
	storage storage.Storage
	creds   auth.Credentials
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(store storage.Storage, creds auth.Credentials) *UploadHandler {
	return &UploadHandler{storage: store, creds: creds}
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// Handle serves POST /api/upload with multipart fields file, type and an
// optional contactId (accepted for linkage bookkeeping, unused by storage).
func (h *UploadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "Only POST requests are allowed")
		return
	}

	isAdmin := h.creds.Authorize(r.Header.Get("Authorization"))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "File too large", "File size must be less than 10MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided", "Please select a file to upload")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusBadRequest, "File too large", "File size must be less than 10MB")
		return
	}

	typeTag := r.FormValue("type")
	if typeTag == "" {
		typeTag = "general"
	}
	allowed, ok := uploadAllowlist[typeTag]
	if !ok {
		allowed = uploadAllowlist["general"]
	}

	contentType := header.Header.Get("Content-Type")
	if !slices.Contains(allowed, contentType) {
		writeError(w, http.StatusBadRequest, "Invalid file type",
			"Allowed types for "+typeTag+": "+strings.Join(allowed, ", "))
		return
	}

	timestamp := strings.ReplaceAll(time.Now().UTC().Format(time.RFC3339), ":", "-")
	filename := timestamp + "-" + filepath.Base(header.Filename)
	folder := "public"
	if isAdmin {
		folder = "admin"
	}
	key := path.Join(folder, typeTag, filename)

	url, err := h.storage.Save(r.Context(), key, file, contentType)
	if err != nil {
		slog.Error("file upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "Upload failed",
			"Failed to upload file. Please try again.")
		return
	}

	if contactID := r.FormValue("contactId"); contactID != "" {
		slog.Info("upload linked to contact", "contact_id", contactID, "key", key)
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:  true,
		URL:      url,
		Filename: filename,
		Size:     header.Size,
		Type:     contentType,
		Message:  "File uploaded successfully",
	})
}
