package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(rw *responseWriter)
		wantStatus  int
		wantWritten bool
	}{
		{
			name:       "defaults to 200 before any write",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:        "implicit 200 on body write",
			write:       func(rw *responseWriter) { _, _ = rw.Write([]byte("<table>")) },
			wantStatus:  http.StatusOK,
			wantWritten: true,
		},
		{
			name:        "explicit status",
			write:       func(rw *responseWriter) { rw.WriteHeader(http.StatusNotFound) },
			wantStatus:  http.StatusNotFound,
			wantWritten: true,
		},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusSeeOther)
				rw.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:  http.StatusSeeOther,
			wantWritten: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.headerWritten != tt.wantWritten {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantWritten)
			}
			if tt.wantWritten && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	n, err := rw.Write([]byte("id,title\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	_, _ = rw.Write([]byte("7,Launch\n"))

	if n != 9 {
		t.Errorf("Write() = %d, want 9", n)
	}
	if rw.written != 18 {
		t.Errorf("written = %d, want 18", rw.written)
	}
}

func TestResponseWriter_RedirectTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		location string
		want     string
	}{
		{name: "see other after delete", status: http.StatusSeeOther, location: "/admin/article/list", want: "/admin/article/list"},
		{name: "found", status: http.StatusFound, location: "/admin/article/7/edit", want: "/admin/article/7/edit"},
		{name: "ok ignores location", status: http.StatusOK, location: "/admin/article/list", want: ""},
		{name: "created ignores location", status: http.StatusCreated, location: "/admin/article/8/edit", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rw := newResponseWriter(httptest.NewRecorder())
			rw.Header().Set("Location", tt.location)
			rw.WriteHeader(tt.status)

			if got := rw.redirectTarget(); got != tt.want {
				t.Errorf("redirectTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
