package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

var errUnknownResult = errors.New("unknown admin result")

// writeJSON sends v with status. Headers are already out when encoding
// fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding JSON response", "error", err)
	}
}
