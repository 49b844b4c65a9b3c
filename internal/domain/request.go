package domain

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// Request parameters and markers that alter the workflow.
const (
	ParamXHR             = "_xml_http_request"
	ParamPreview         = "btn_preview"
	ParamPreviewApprove  = "btn_preview_approve"
	ParamPreviewDecline  = "btn_preview_decline"
	ParamUpdateAndList   = "btn_update_and_list"
	ParamCreateAndList   = "btn_create_and_list"
	ParamCreateAndCreate = "btn_create_and_create"
	ParamSubclass        = "subclass"
	ParamListMode        = "_list_mode"
	ParamUniqID          = "uniqid"
	ParamConfirmation    = "confirmation"
	ParamCsrfToken       = "_csrf_token"
	ParamTab             = "_tab"
	ParamMethod          = "_method"
	ParamFormat          = "format"
)

// Actor is the authenticated principal performing the request.
type Actor struct {
	Username string
	Roles    []string
}

// HasRole reports whether the actor carries role.
func (a Actor) HasRole(role string) bool {
	return slices.Contains(a.Roles, role)
}

// Request is the transport-agnostic view of one inbound admin request. It is
// built once by the inbound adapter and never mutated afterwards.
type Request struct {
	Method      string
	Params      url.Values
	XHR         bool
	AcceptsJSON bool
	Actor       Actor
	SessionID   string
	Locale      string
}

// Has reports whether the parameter is present, even with an empty value.
func (r *Request) Has(key string) bool {
	_, ok := r.Params[key]
	return ok
}

// Get returns the first value of the parameter or "".
func (r *Request) Get(key string) string {
	return r.Params.Get(key)
}

// IsXHR reports whether the request expects XHR-style replies. The
// _xml_http_request marker forces it without the transport header.
func (r *Request) IsXHR() bool {
	if r.XHR {
		return true
	}
	v := strings.TrimSpace(r.Get(ParamXHR))
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

// RestMethod returns the effective verb, honoring the _method override on
// POST submissions from HTML forms.
func (r *Request) RestMethod() string {
	if r.Method == http.MethodPost {
		if m := strings.ToUpper(strings.TrimSpace(r.Get(ParamMethod))); m != "" {
			return m
		}
	}
	return r.Method
}

// IsSubmission reports whether the verb carries a form submission.
func (r *Request) IsSubmission() bool {
	switch r.RestMethod() {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// FilterParams returns the datagrid filter parameters (keys of the form
// filter[...]) carried by the request.
func (r *Request) FilterParams() url.Values {
	out := url.Values{}
	for key, vals := range r.Params {
		if strings.HasPrefix(key, "filter[") {
			out[key] = slices.Clone(vals)
		}
	}
	return out
}

// ParseBool interprets the HTML-form truthy spellings.
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
