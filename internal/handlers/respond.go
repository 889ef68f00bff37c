package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/stacdex/stacdex/internal/importer"
)

// importResponse is the success payload for a bulk upload
type importResponse struct {
	Success        bool                      `json:"success"`
	Imported       int                       `json:"imported"`
	ColumnMapping  map[string]importer.Field `json:"columnMapping"`
	IgnoredColumns []string                  `json:"ignoredColumns"`
	Message        string                    `json:"message"`
}

// errorResponse is the generic failure payload. Details is a message list
// for parse failures and a single string for storage failures.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// validationFailureResponse rejects an upload with the full error list. The
// column mapping is always included so users can diagnose unmapped headers.
type validationFailureResponse struct {
	Error          string                     `json:"error"`
	Details        []importer.ValidationError `json:"details"`
	ColumnMapping  map[string]importer.Field  `json:"columnMapping"`
	IgnoredColumns []string                   `json:"ignoredColumns"`
}

// respondJSON writes a JSON response with the given status code
func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}
