package domain

import (
	"net/http"
	"net/url"
	"testing"
)

func TestRequest_IsXHR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{name: "plain", req: Request{Params: url.Values{}}, want: false},
		{name: "transport header", req: Request{XHR: true, Params: url.Values{}}, want: true},
		{name: "marker forces xhr", req: Request{Params: url.Values{ParamXHR: {"1"}}}, want: true},
		{name: "false marker", req: Request{Params: url.Values{ParamXHR: {"false"}}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.IsXHR(); got != tt.want {
				t.Errorf("IsXHR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequest_RestMethod(t *testing.T) {
	t.Parallel()

	r := Request{Method: http.MethodPost, Params: url.Values{ParamMethod: {"delete"}}}
	if got := r.RestMethod(); got != http.MethodDelete {
		t.Errorf("RestMethod() = %q, want DELETE", got)
	}

	r = Request{Method: http.MethodGet, Params: url.Values{ParamMethod: {"DELETE"}}}
	if got := r.RestMethod(); got != http.MethodGet {
		t.Errorf("RestMethod() on GET = %q, want GET", got)
	}
}

func TestRequest_FilterParams(t *testing.T) {
	t.Parallel()

	r := Request{Params: url.Values{"filter[title]": {"go"}, "title": {"x"}}}
	got := r.FilterParams()
	if len(got) != 1 || got.Get("filter[title]") != "go" {
		t.Errorf("FilterParams() = %v", got)
	}
}
