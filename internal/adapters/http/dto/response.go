// Package dto translates between HTTP requests and the admin domain: it
// builds domain.Request values from form submissions and renders errors as
// RFC 9457 Problem Details or error page contexts.
package dto

import (
	"mime"
	"net/http"
)

// ErrorPage returns the template context of the HTML error page for resp.
// Details of server errors are not shown to the browser.
func ErrorPage(resp ErrorResponse) map[string]any {
	data := map[string]any{
		"status": resp.Status,
		"title":  resp.Title,
	}
	if resp.Status < http.StatusInternalServerError {
		data["detail"] = resp.Detail
	}
	return data
}

// ContentDisposition returns the attachment header value for filename.
func ContentDisposition(filename string) string {
	if filename == "" {
		return "attachment"
	}
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

// WantsProblemJSON reports whether errors for r are answered as Problem
// Details instead of an HTML page.
func WantsProblemJSON(r *http.Request) bool {
	return IsXHR(r) || AcceptsJSON(r)
}
