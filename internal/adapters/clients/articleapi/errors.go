// Package articleapi is the remote article backend: a ports.ModelManager
// that stores articles through a downstream REST API instead of the local
// database. Wire representations and their translation stay inside this
// package.
package articleapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// maxErrorBodySize bounds how much of an error body is decoded.
const maxErrorBodySize = 1 << 20

// problemDetail is the RFC 9457 body the article API answers errors with.
type problemDetail struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// statusErrors maps API statuses to the domain error the engine acts on.
// Anything 5xx is ErrUnavailable.
var statusErrors = map[int]error{
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusPreconditionFailed:  domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
}

// TranslateHTTPError maps an error response to a domain error. Rejections
// listing field errors become a *domain.ValidationError keyed by form field.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)
	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	target, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		target, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}

	if errors.Is(target, domain.ErrValidation) && len(pd.Errors) > 0 {
		fields := make(map[string]string, len(pd.Errors))
		for _, e := range pd.Errors {
			// The API reports "body.title"; the admin form knows "title".
			name := strings.TrimPrefix(strings.TrimPrefix(e.Location, "body."), "form.")
			fields[name] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("%s: %w", detail, target)
}

// transportError wraps a failure that produced no usable response. Breaker
// rejections and connection errors mean the backend is unavailable; an
// expired or canceled request context stays what it is.
func transportError(method, path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
}

func readProblem(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil {
		return pd
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return pd
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&pd)
	return pd
}
