package dto

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// maxFormBodyBytes is the maximum allowed size for a submitted form (4 MB).
const maxFormBodyBytes = 4 << 20

// maxMultipartMemory bounds the in-memory part of multipart submissions.
const maxMultipartMemory = 1 << 20

// NewAdminRequest builds the transport-agnostic admin request from r. Query
// and body parameters are merged, body values first. The caller fills in the
// actor, session and locale.
// Returns a *domain.ValidationError when the body cannot be parsed.
func NewAdminRequest(w http.ResponseWriter, r *http.Request) (*domain.Request, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	}

	if err := parseForm(r); err != nil {
		return nil, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid form submission"},
		}
	}

	params := make(url.Values, len(r.Form))
	for key, vals := range r.Form {
		params[key] = append([]string(nil), vals...)
	}

	return &domain.Request{
		Method:      r.Method,
		Params:      params,
		XHR:         IsXHR(r),
		AcceptsJSON: AcceptsJSON(r),
	}, nil
}

func parseForm(r *http.Request) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		err := r.ParseMultipartForm(maxMultipartMemory)
		if errors.Is(err, http.ErrNotMultipart) {
			return r.ParseForm()
		}
		return err
	}
	return r.ParseForm()
}

// IsXHR reports whether r was sent by a script.
func IsXHR(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// AcceptsJSON reports whether r lists a JSON media type in its Accept header.
func AcceptsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mt == "application/json" || strings.HasSuffix(mt, "+json") {
			return true
		}
	}
	return false
}
