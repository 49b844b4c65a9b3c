package app

import (
	"context"
	"errors"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-admin-workflow/internal/app/context"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// HistoryComparator renders the revision list of an object, one revision in
// place of the live object, or two revisions side by side.
type HistoryComparator[T any] struct {
	engine[T]
}

// NewHistoryComparator creates a HistoryComparator.
func NewHistoryComparator[T any](res *Resource, c Collaborators[T]) *HistoryComparator[T] {
	return &HistoryComparator[T]{engine: newEngine(res, c)}
}

// History lists the revisions of an object.
func (h *HistoryComparator[T]) History(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	obj, reader, err := h.prepare(ctx, req, id, domain.ActionHistory)
	if err != nil {
		return domain.Result{}, err
	}

	revisions, err := reader.FindRevisions(ctx, h.res.Class, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list revisions",
			slog.String("operation", "History"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return domain.Result{}, err
	}

	var current string
	if len(revisions) > 0 {
		current = revisions[0].ID
	}

	return h.render(req, domain.ActionHistory, domain.TemplateHistory, map[string]any{
		"object":          obj,
		"objectId":        id,
		"revisions":       revisions,
		"currentRevision": current,
	}), nil
}

// ViewRevision renders one revision with the show layout.
func (h *HistoryComparator[T]) ViewRevision(ctx context.Context, req *domain.Request, id, revision string) (domain.Result, error) {
	_, reader, err := h.prepare(ctx, req, id, domain.ActionHistoryViewRevision)
	if err != nil {
		return domain.Result{}, err
	}

	rev, err := h.revision(ctx, reader, id, revision)
	if err != nil {
		return domain.Result{}, err
	}

	return h.render(req, domain.ActionShow, domain.TemplateShow, map[string]any{
		"object":   rev.Snapshot,
		"objectId": id,
		"revision": rev,
		"elements": h.elements(rev.Snapshot),
	}), nil
}

// CompareRevisions renders two revisions side by side.
func (h *HistoryComparator[T]) CompareRevisions(ctx context.Context, req *domain.Request, id, base, compare string) (domain.Result, error) {
	_, reader, err := h.prepare(ctx, req, id, domain.ActionHistoryCompareRevisions)
	if err != nil {
		return domain.Result{}, err
	}

	baseRev, err := h.revision(ctx, reader, id, base)
	if err != nil {
		return domain.Result{}, err
	}
	compareRev, err := h.revision(ctx, reader, id, compare)
	if err != nil {
		return domain.Result{}, err
	}

	return h.render(req, domain.ActionShow, domain.TemplateShowCompare, map[string]any{
		"object":          baseRev.Snapshot,
		"objectCompare":   compareRev.Snapshot,
		"objectId":        id,
		"baseRevision":    baseRev,
		"compareRevision": compareRev,
		"elements":        h.elements(baseRev.Snapshot),
		"elementsCompare": h.elements(compareRev.Snapshot),
	}), nil
}

// prepare loads the subject, checks access and resolves the audit reader.
func (h *HistoryComparator[T]) prepare(ctx context.Context, req *domain.Request, id, action string) (T, ports.AuditReader[T], error) {
	var zero T

	obj, err := h.find(ctx, id)
	if err != nil {
		return zero, nil, err
	}
	if err := h.checkAccess(ctx, req, action, id); err != nil {
		return zero, nil, err
	}

	if h.c.Audit == nil {
		return zero, nil, &domain.NotFoundError{What: "audit reader", Class: h.res.Class}
	}
	reader, ok := h.c.Audit.Reader(h.res.Class)
	if !ok {
		return zero, nil, &domain.NotFoundError{What: "audit reader", Class: h.res.Class}
	}
	return obj, reader, nil
}

// revision loads one revision, memoized for the request.
func (h *HistoryComparator[T]) revision(ctx context.Context, reader ports.AuditReader[T], id, revision string) (domain.Revision[T], error) {
	rc := appctx.Ensure(ctx)
	key := appctx.Key("revision", h.res.Class, id, revision)

	rev, err := appctx.GetOrFetch(rc, key, func(ctx context.Context) (domain.Revision[T], error) {
		return reader.Find(ctx, h.res.Class, id, revision)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return rev, domain.RevisionNotFound(id, revision, h.res.Class)
		}
		h.logger.ErrorContext(ctx, "failed to load revision",
			slog.String("id", id),
			slog.String("revision", revision),
			slog.Any("error", err),
		)
		return rev, err
	}
	return rev, nil
}

func (h *HistoryComparator[T]) elements(obj T) []domain.Field {
	if h.c.Show == nil {
		return nil
	}
	return h.c.Show.Elements(obj)
}
