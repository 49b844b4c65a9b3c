package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// Batch feedback message keys.
const (
	MsgBatchEmpty               = "flash_batch_empty"
	MsgBatchDeleteSuccess       = "flash_batch_delete_success"
	MsgBatchDeleteError         = "flash_batch_delete_error"
	MsgBatchNoElementsProcessed = "flash_batch_no_elements_processed"

	// BatchDelete is the name of the built-in delete batch action.
	BatchDelete = "delete"
)

// BatchScope is what an executing batch handler receives. Query is nil when
// the selection is empty and all elements were not requested.
type BatchScope struct {
	Request *domain.Request
	Query   *domain.Query
	Batch   domain.BatchRequest

	// ListURL is the list page carrying the active filters.
	ListURL string

	// Flash records feedback. The engine's own batch keys are translated in
	// DefaultTranslationDomain, any other key in the action's domain.
	Flash func(kind domain.FlashKind, key string, params map[string]string)
}

// BatchHandler executes one batch action.
type BatchHandler func(ctx context.Context, scope BatchScope) (domain.Result, error)

// BatchActionView is a batch action as offered on the list page.
type BatchActionView struct {
	Name              string
	Label             string
	TranslationDomain string
}

// BatchDispatcher resolves, checks relevance of, confirms and executes
// named batch actions.
type BatchDispatcher[T any] struct {
	engine[T]
	specs    []domain.BatchActionSpec
	handlers map[string]BatchHandler
}

// DeleteBatchAction returns the BatchActionSpec of the built-in delete batch action.
func DeleteBatchAction() domain.BatchActionSpec {
	return domain.BatchActionSpec{Name: BatchDelete, Label: "action_delete", TranslationDomain: DefaultTranslationDomain}
}

// NewBatchDispatcher creates a BatchDispatcher. Every spec must have a
// handler in handlers; the built-in delete handler is supplied when the
// delete spec has none. A spec without handler fails with
// domain.ErrMissingHandler.
func NewBatchDispatcher[T any](res *Resource, c Collaborators[T], specs []domain.BatchActionSpec, handlers map[string]BatchHandler) (*BatchDispatcher[T], error) {
	d := &BatchDispatcher[T]{
		engine:   newEngine(res, c),
		specs:    slices.Clone(specs),
		handlers: make(map[string]BatchHandler, len(handlers)+1),
	}
	for name, h := range handlers {
		d.handlers[name] = h
	}

	seen := make(map[string]bool, len(specs))
	for _, spec := range d.specs {
		if seen[spec.Name] {
			return nil, fmt.Errorf("batch action %q registered twice", spec.Name)
		}
		seen[spec.Name] = true

		if _, ok := d.handlers[spec.Name]; ok {
			continue
		}
		if spec.Name == BatchDelete {
			d.handlers[BatchDelete] = d.batchDelete
			continue
		}
		return nil, fmt.Errorf("%w: no handler registered for batch action `%s`", domain.ErrMissingHandler, spec.Name)
	}

	return d, nil
}

func (d *BatchDispatcher[T]) spec(name string) (domain.BatchActionSpec, bool) {
	for _, s := range d.specs {
		if s.Name == name {
			return s, true
		}
	}
	return domain.BatchActionSpec{}, false
}

// Available lists the batch actions the actor is offered on the list page.
func (d *BatchDispatcher[T]) Available(ctx context.Context, req *domain.Request) []BatchActionView {
	out := make([]BatchActionView, 0, len(d.specs))
	for _, s := range d.specs {
		if s.Name == BatchDelete && (!d.res.Routes.HasRoute(domain.ActionDelete) || !d.isGranted(ctx, req, domain.ActionDelete, "")) {
			continue
		}
		td := s.TranslationDomain
		if td == "" {
			td = d.res.TranslationDomain
		}
		out = append(out, BatchActionView{Name: s.Name, Label: d.trans(req, s.Label, nil, td), TranslationDomain: td})
	}
	return out
}

// Handle runs the batch protocol for one POST request.
func (d *BatchDispatcher[T]) Handle(ctx context.Context, req *domain.Request) (domain.Result, error) {
	if method := req.RestMethod(); method != http.MethodPost {
		return domain.Result{}, &domain.NotFoundError{
			Detail: fmt.Sprintf("invalid request method given %q, %s expected", method, http.MethodPost),
		}
	}

	if err := d.checkCsrf(ctx, req, domain.IntentionBatch); err != nil {
		return domain.Result{}, err
	}

	batch := domain.ParseBatchRequest(req.Params)

	spec, ok := d.spec(batch.Action)
	if !ok {
		return domain.Result{}, fmt.Errorf("%w: the `%s` batch action is not defined", domain.ErrUndefinedBatchAction, batch.Action)
	}

	if rel := spec.Evaluate(batch); !rel.IsRelevant() {
		key := rel.MessageKey(MsgBatchEmpty)
		d.flash(ctx, req, domain.FlashInfo, key, nil, d.feedbackDomain(spec, key))
		d.recordBatch(ctx, batch.Action, "not_relevant")
		return d.redirectToList(ctx, req), nil
	}

	if spec.RequiresConfirmation() && !batch.Confirmed {
		return d.confirm(ctx, req, spec, batch)
	}

	return d.execute(ctx, req, spec, batch)
}

func (d *BatchDispatcher[T]) confirm(ctx context.Context, req *domain.Request, spec domain.BatchActionSpec, batch domain.BatchRequest) (domain.Result, error) {
	payload, err := batch.Payload()
	if err != nil {
		return domain.Result{}, err
	}

	td := spec.TranslationDomain
	if td == "" {
		td = d.res.TranslationDomain
	}

	d.recordBatch(ctx, batch.Action, "confirmation")
	return d.render(req, domain.ActionList, domain.TemplateBatchConfirmation, map[string]any{
		"batchAction":            spec.Name,
		"actionLabel":            d.trans(req, spec.Label, nil, td),
		"batchTranslationDomain": td,
		"data":                   payload,
		"datagrid":               d.datagrid(ctx, req),
		"selectionCount":         len(batch.SelectedIDs),
		"allElements":            batch.AllElements,
		"csrfToken":              d.csrfToken(ctx, req, domain.IntentionBatch),
	}), nil
}

func (d *BatchDispatcher[T]) execute(ctx context.Context, req *domain.Request, spec domain.BatchActionSpec, batch domain.BatchRequest) (domain.Result, error) {
	handler, ok := d.handlers[spec.Name]
	if !ok {
		return domain.Result{}, fmt.Errorf("%w: no handler registered for batch action `%s`", domain.ErrMissingHandler, spec.Name)
	}

	q := d.datagrid(ctx, req).Query.DisablePagination()
	if hook := d.c.Hooks.PreBatch; hook != nil {
		q, batch = hook(ctx, q, batch)
	}

	var scoped *domain.Query
	switch {
	case batch.AllElements:
		scoped = &q
	case len(batch.SelectedIDs) > 0:
		constrained := q.ConstrainToIDs(batch.SelectedIDs)
		scoped = &constrained
	}

	d.logger.InfoContext(ctx, "executing batch action",
		slog.String("action", spec.Name),
		slog.Int("selected", len(batch.SelectedIDs)),
		slog.Bool("all_elements", batch.AllElements),
	)

	res, err := handler(ctx, BatchScope{
		Request: req,
		Query:   scoped,
		Batch:   batch,
		ListURL: d.listURL(ctx, req),
		Flash: func(kind domain.FlashKind, key string, params map[string]string) {
			d.flash(ctx, req, kind, key, params, d.feedbackDomain(spec, key))
		},
	})
	if err != nil {
		d.recordBatch(ctx, spec.Name, "error")
		return domain.Result{}, err
	}
	d.recordBatch(ctx, spec.Name, "executed")
	return res, nil
}

// engineBatchKeys are the batch feedback keys of DefaultTranslationDomain.
var engineBatchKeys = []string{MsgBatchEmpty, MsgBatchDeleteSuccess, MsgBatchDeleteError, MsgBatchNoElementsProcessed}

// feedbackDomain picks the catalog of a batch feedback key: the action's
// translation domain, else the resource's, unless the key is the engine's.
func (d *BatchDispatcher[T]) feedbackDomain(spec domain.BatchActionSpec, key string) string {
	switch {
	case slices.Contains(engineBatchKeys, key):
		return DefaultTranslationDomain
	case spec.TranslationDomain != "":
		return spec.TranslationDomain
	default:
		return d.res.TranslationDomain
	}
}

// batchDelete is the built-in delete handler.
func (d *BatchDispatcher[T]) batchDelete(ctx context.Context, scope BatchScope) (domain.Result, error) {
	if err := d.checkAccess(ctx, scope.Request, domain.ActionDelete, ""); err != nil {
		return domain.Result{}, err
	}

	if scope.Query == nil {
		scope.Flash(domain.FlashInfo, MsgBatchNoElementsProcessed, nil)
		return domain.Redirect(scope.ListURL), nil
	}

	count, err := d.c.Manager.BatchDelete(ctx, *scope.Query)
	if err != nil {
		if terr := d.c.Exceptions.Translate(ctx, persistenceError("batch delete", err)); terr != nil {
			return domain.Result{}, terr
		}
		scope.Flash(domain.FlashError, MsgBatchDeleteError, nil)
		return domain.Redirect(scope.ListURL), nil
	}

	d.logger.InfoContext(ctx, "batch delete completed", slog.Int("count", count))
	scope.Flash(domain.FlashSuccess, MsgBatchDeleteSuccess, map[string]string{"%count%": fmt.Sprint(count)})
	return domain.Redirect(scope.ListURL), nil
}
