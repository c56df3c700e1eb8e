// Package handler contains the HTTP surface: one handler per endpoint, plus
// the CORS, logging, security-header and rate-limit middleware.
//
// Every endpoint answers OPTIONS preflight with 200 and no body, rejects
// other disallowed methods with a 405 {error, message} pair, and keeps all
// error responses in that same two-field shape.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the stable error body shape shared by every endpoint.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, errorResponse{Error: errCode, Message: message})
}

func methodNotAllowed(w http.ResponseWriter, message string) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed", message)
}

// CORS opens every endpoint to all origins and short-circuits OPTIONS
// preflight with a bare 200.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		h.Set("Access-Control-Allow-Headers",
			"X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
