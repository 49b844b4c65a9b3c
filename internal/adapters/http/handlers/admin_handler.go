package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Route parameters of the admin routes.
const (
	ParamID              = "id"
	ParamRevision        = "revision"
	ParamBaseRevision    = "base_revision"
	ParamCompareRevision = "compare_revision"
)

const errorTemplate = "error"

type adminAction func(ctx context.Context, req *domain.Request) (domain.Result, error)

// AdminHandler exposes one admin resource over HTTP. It builds the domain
// request, runs the action and writes the resulting directive.
type AdminHandler struct {
	svc      ports.AdminService
	renderer ports.TemplateRenderer
	logger   *slog.Logger
}

// NewAdminHandler creates a new AdminHandler for svc.
func NewAdminHandler(svc ports.AdminService, renderer ports.TemplateRenderer, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AdminHandler{svc: svc, renderer: renderer, logger: logger}
}

// Resource returns the name of the served resource, used as route segment.
func (h *AdminHandler) Resource() string {
	return h.svc.Name()
}

// List handles GET /admin/{resource}/list.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.List)
}

// Create handles GET and POST /admin/{resource}/create.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Create)
}

// Batch handles /admin/{resource}/batch.
func (h *AdminHandler) Batch(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Batch)
}

// Export handles GET /admin/{resource}/export.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Export)
}

// Edit handles GET and POST /admin/{resource}/{id}/edit.
func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	h.serveObject(w, r, h.svc.Edit)
}

// Show handles GET /admin/{resource}/{id}/show.
func (h *AdminHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.serveObject(w, r, h.svc.Show)
}

// Delete handles GET, POST and DELETE /admin/{resource}/{id}/delete.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.serveObject(w, r, h.svc.Delete)
}

// History handles GET /admin/{resource}/{id}/history.
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	h.serveObject(w, r, h.svc.History)
}

// ACL handles GET and POST /admin/{resource}/{id}/acl.
func (h *AdminHandler) ACL(w http.ResponseWriter, r *http.Request) {
	h.serveObject(w, r, h.svc.ACL)
}

// HistoryViewRevision handles GET /admin/{resource}/{id}/history/{revision}/view.
func (h *AdminHandler) HistoryViewRevision(w http.ResponseWriter, r *http.Request) {
	id, revision := chi.URLParam(r, ParamID), chi.URLParam(r, ParamRevision)
	h.serve(w, r, func(ctx context.Context, req *domain.Request) (domain.Result, error) {
		return h.svc.HistoryViewRevision(ctx, req, id, revision)
	})
}

// HistoryCompareRevisions handles
// GET /admin/{resource}/{id}/history/{base_revision}/{compare_revision}/compare.
func (h *AdminHandler) HistoryCompareRevisions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ParamID)
	base, compare := chi.URLParam(r, ParamBaseRevision), chi.URLParam(r, ParamCompareRevision)
	h.serve(w, r, func(ctx context.Context, req *domain.Request) (domain.Result, error) {
		return h.svc.HistoryCompareRevisions(ctx, req, id, base, compare)
	})
}

func (h *AdminHandler) serveObject(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, req *domain.Request, id string) (domain.Result, error),
) {
	id := chi.URLParam(r, ParamID)
	h.serve(w, r, func(ctx context.Context, req *domain.Request) (domain.Result, error) {
		return action(ctx, req, id)
	})
}

func (h *AdminHandler) serve(w http.ResponseWriter, r *http.Request, action adminAction) {
	req, err := adminRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeResult(w, r, req, res)
}

// adminRequest builds the domain request and attaches what the admin
// middleware resolved.
func adminRequest(w http.ResponseWriter, r *http.Request) (*domain.Request, error) {
	req, err := dto.NewAdminRequest(w, r)
	if err != nil {
		return nil, err
	}
	ctx := r.Context()
	req.Actor = middleware.ActorFromContext(ctx)
	req.SessionID = middleware.SessionIDFromContext(ctx)
	req.Locale = middleware.LocaleFromContext(ctx)
	return req, nil
}

func (h *AdminHandler) writeResult(w http.ResponseWriter, r *http.Request, req *domain.Request, res domain.Result) {
	switch res.Kind {
	case domain.ResultRender:
		h.writePage(w, r, req, res)
	case domain.ResultRedirect:
		http.Redirect(w, r, res.URL, http.StatusFound)
	case domain.ResultJSON:
		status := res.Status
		if status == 0 {
			status = http.StatusOK
		}
		writeJSON(w, r, status, res.Payload)
	case domain.ResultDownload:
		w.Header().Set("Content-Type", res.ContentType)
		w.Header().Set("Content-Disposition", dto.ContentDisposition(res.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(res.Body)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(res.Body); err != nil {
			h.logger.WarnContext(r.Context(), "failed to write download", slog.Any("error", err))
		}
	default:
		h.logger.ErrorContext(r.Context(), "unknown admin result",
			slog.String("kind", res.Kind.String()),
		)
		dto.WriteErrorResponse(w, r, errUnknownResult)
	}
}

// writePage renders into a buffer first so template failures still produce
// a clean error response.
func (h *AdminHandler) writePage(w http.ResponseWriter, r *http.Request, req *domain.Request, res domain.Result) {
	ctx := r.Context()

	data := maps.Clone(res.Data)
	if data == nil {
		data = map[string]any{}
	}
	data["flashes"] = h.svc.Flashes(ctx, req.SessionID)
	if _, ok := data["uniqid"]; !ok {
		data["uniqid"] = formUniqID(req)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, res.Template, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to render admin page",
			slog.String("template", res.Template),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WarnContext(ctx, "failed to write admin page", slog.Any("error", err))
	}
}

func (h *AdminHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	resp := dto.NewErrorResponse(r, err)

	if resp.Status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "admin action failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	if h.renderer == nil || dto.WantsProblemJSON(r) {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if renderErr := h.renderer.Render(&buf, errorTemplate, dto.ErrorPage(resp)); renderErr != nil {
		h.logger.ErrorContext(ctx, "failed to render error page", slog.Any("error", renderErr))
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(resp.Status)
	_, _ = buf.WriteTo(w)
}

// formUniqID returns the form field prefix of req, minting a new one for
// blank forms.
func formUniqID(req *domain.Request) string {
	if id := req.Get(domain.ParamUniqID); id != "" {
		return id
	}
	return "s" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
