// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Each admin handler is mounted at basePath/{resource} behind adminMW, which
// may be nil. middlewares apply to every route in the order given.
func NewRouter(
	basePath string,
	admins []*handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	adminMW func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the admin prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	prefix := strings.TrimRight(basePath, "/")
	for _, h := range admins {
		r.Route(prefix+"/"+h.Resource(), func(r chi.Router) {
			if adminMW != nil {
				r.Use(adminMW)
			}
			mountAdmin(r, h)
		})
	}

	return r
}

func mountAdmin(r chi.Router, h *handlers.AdminHandler) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, strings.TrimRight(req.URL.Path, "/")+"/list", http.StatusFound)
	})

	// Collection actions.
	r.Get("/list", h.List)
	r.Get("/create", h.Create)
	r.Post("/create", h.Create)
	r.Get("/export", h.Export)

	// Any verb reaches the dispatcher; it answers 404 to anything but POST.
	r.HandleFunc("/batch", h.Batch)

	// Object actions.
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/edit", h.Edit)
		r.Post("/edit", h.Edit)
		r.Get("/show", h.Show)
		r.Get("/delete", h.Delete)
		r.Post("/delete", h.Delete)
		r.Delete("/delete", h.Delete)
		r.Get("/acl", h.ACL)
		r.Post("/acl", h.ACL)

		r.Get("/history", h.History)
		r.Get("/history/{revision}/view", h.HistoryViewRevision)
		r.Get("/history/{base_revision}/{compare_revision}/compare", h.HistoryCompareRevisions)
	})
}
