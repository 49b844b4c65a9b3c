package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockAdminService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().Name().Return("article").Maybe()
	renderer := mocks.NewMockTemplateRenderer(t)
	registry := mocks.NewMockHealthRegistry(t)

	ah := handlers.NewAdminHandler(svc, renderer, nil)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter("/admin", []*handlers.AdminHandler{ah}, hh, nil, middlewares...)
	return router, svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/admin/article/list"},
		{http.MethodGet, "/admin/article/create"},
		{http.MethodPost, "/admin/article/create"},
		{http.MethodPost, "/admin/article/batch"},
		{http.MethodGet, "/admin/article/export"},
		{http.MethodGet, "/admin/article/{id}/edit"},
		{http.MethodPost, "/admin/article/{id}/edit"},
		{http.MethodGet, "/admin/article/{id}/show"},
		{http.MethodGet, "/admin/article/{id}/delete"},
		{http.MethodPost, "/admin/article/{id}/delete"},
		{http.MethodDelete, "/admin/article/{id}/delete"},
		{http.MethodGet, "/admin/article/{id}/acl"},
		{http.MethodPost, "/admin/article/{id}/acl"},
		{http.MethodGet, "/admin/article/{id}/history"},
		{http.MethodGet, "/admin/article/{id}/history/{revision}/view"},
		{http.MethodGet, "/admin/article/{id}/history/{base_revision}/{compare_revision}/compare"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, _, registry := newTestRouter(t, testMW)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationDeleteRedirect(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)
	svc.EXPECT().Delete(mock.Anything, mock.Anything, "42").Return(domain.Redirect("/admin/article/list"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/article/42/delete", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/article/list" {
		t.Errorf("Location = %q, want %q", loc, "/admin/article/list")
	}
}

func TestRouter_ResourceRootRedirectsToList(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/article", nil))

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/article/list" {
		t.Errorf("Location = %q, want %q", loc, "/admin/article/list")
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/article/list", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_AdminMiddlewareScopedToAdminRoutes(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().Name().Return("article").Maybe()
	svc.EXPECT().Delete(mock.Anything, mock.Anything, "7").Return(domain.Redirect("/admin/article/list"), nil)
	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	var adminHits int
	adminMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminHits++
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter("/admin",
		[]*handlers.AdminHandler{handlers.NewAdminHandler(svc, mocks.NewMockTemplateRenderer(t), nil)},
		handlers.NewHealthHandler(registry),
		adminMW,
	)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if adminHits != 0 {
		t.Fatalf("admin middleware ran %d times for a health probe, want 0", adminHits)
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/admin/article/7/delete", nil))
	if adminHits != 1 {
		t.Errorf("admin middleware ran %d times for an admin action, want 1", adminHits)
	}
}
