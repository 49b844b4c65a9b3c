package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 Problem Details body. Code is an extension
// member naming the domain failure, stable across wording changes.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid form field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problem maps a domain sentinel to its status and code. The first match
// wins, so the more specific sentinels come first.
type problem struct {
	target error
	status int
	code   string
}

var problems = []problem{
	{domain.ErrCsrfInvalid, http.StatusBadRequest, "csrf_invalid"},
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "backend_unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
	{domain.ErrUndefinedBatchAction, http.StatusInternalServerError, "undefined_batch_action"},
	{domain.ErrMissingHandler, http.StatusInternalServerError, "missing_batch_handler"},
	{domain.ErrExportFormat, http.StatusInternalServerError, "export_format"},
	{domain.ErrPersistence, http.StatusInternalServerError, "persistence"},
}

func classify(err error) (int, string) {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p.status, p.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// NewErrorResponse builds the problem for err. The instance is the request
// URI. Server-side failures carry no detail, since their text may name
// tables, hosts or stored values.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Instance: r.RequestURI,
	}
	if status < http.StatusInternalServerError {
		resp.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// StatusFor returns the HTTP status of err.
func StatusFor(err error) int {
	status, _ := classify(err)
	return status
}

// fieldDetails lists invalid fields ordered by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "form." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
