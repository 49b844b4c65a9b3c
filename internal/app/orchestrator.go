package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// Feedback message keys.
const (
	MsgCreateSuccess = "flash_create_success"
	MsgCreateError   = "flash_create_error"
	MsgEditSuccess   = "flash_edit_success"
	MsgEditError     = "flash_edit_error"
	MsgLockError     = "flash_lock_error"
	MsgDeleteSuccess = "flash_delete_success"
	MsgDeleteError   = "flash_delete_error"
	MsgACLSuccess    = "flash_acl_edit_success"

	sessionListMode = "list_mode"
)

// Orchestrator drives single-object actions. The create and edit flows run
// bind, validate, preview and persist, and always end in a Result or an error.
type Orchestrator[T any] struct {
	engine[T]
	batch *BatchDispatcher[T]
}

// NewOrchestrator creates an Orchestrator. batch may be nil; it only feeds
// the list page with the available batch actions.
func NewOrchestrator[T any](res *Resource, c Collaborators[T], batch *BatchDispatcher[T]) *Orchestrator[T] {
	return &Orchestrator[T]{engine: newEngine(res, c), batch: batch}
}

// Create handles GET and POST on the create route.
func (o *Orchestrator[T]) Create(ctx context.Context, req *domain.Request) (domain.Result, error) {
	if err := o.checkAccess(ctx, req, domain.ActionCreate, ""); err != nil {
		return domain.Result{}, err
	}

	subclass := o.res.ActiveSubClass(req)
	if o.res.Abstract && subclass == "" {
		return o.render(req, domain.ActionCreate, domain.TemplateSelectSubclass, map[string]any{
			"subclasses": o.res.SubClasses,
		}), nil
	}

	obj := o.c.Manager.NewInstance(subclass)

	if hook := o.c.Hooks.PreCreate; hook != nil {
		res, err := hook(ctx, req, obj)
		if err != nil || res != nil {
			return deref(res), err
		}
	}

	return o.submit(ctx, req, obj, domain.ActionCreate)
}

// Edit handles GET and POST on the edit route.
func (o *Orchestrator[T]) Edit(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	obj, err := o.find(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	if err := o.checkAccess(ctx, req, domain.ActionEdit, id); err != nil {
		return domain.Result{}, err
	}

	if hook := o.c.Hooks.PreEdit; hook != nil {
		res, err := hook(ctx, req, obj)
		if err != nil || res != nil {
			return deref(res), err
		}
	}

	return o.submit(ctx, req, obj, domain.ActionEdit)
}

// submit is the state machine shared by create and edit.
func (o *Orchestrator[T]) submit(ctx context.Context, req *domain.Request, obj T, action string) (domain.Result, error) {
	form, err := o.c.Binder.Bind(ctx, obj, req)
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to bind form",
			slog.String("operation", action),
			slog.Any("error", err),
		)
		return domain.Result{}, err
	}

	templateKey := domain.TemplateEdit
	var elements []domain.Field

	if form.Submitted {
		if hook := o.c.Hooks.PreValidate; hook != nil {
			hook(ctx, form.Subject)
		}
		form.Valid = len(form.Errors) == 0
		form.AddErrors(o.c.Binder.Validate(ctx, form.Subject))

		form.Preview = domain.PreviewSignalFrom(req.Params)
		stage := domain.ResolvePreview(o.res.SupportsPreview, form.Preview)

		if form.Valid && stage.ReadyToPersist() {
			res, done, err := o.persist(ctx, req, form, action)
			if err != nil || done {
				return res, err
			}
		}

		switch {
		case !form.Valid:
			if !req.IsXHR() {
				o.flash(ctx, req, domain.FlashError, errorKey(action), o.nameParams(form.Subject), DefaultTranslationDomain)
			} else if req.AcceptsJSON {
				return domain.JSON(domain.Reply{Result: domain.ReplyError, Errors: form.Errors}, http.StatusOK), nil
			}
		case stage.ShowPreview():
			templateKey = domain.TemplatePreview
			elements = o.elements(form.Subject)
		}
	}

	return o.render(req, action, templateKey, map[string]any{
		"form":     form,
		"object":   form.Subject,
		"objectId": o.c.Manager.ObjectID(form.Subject),
		"elements": elements,
		"subclass": o.res.ActiveSubClass(req),
	}), nil
}

// persist writes a valid subject. done reports that res is final; otherwise
// the form has been updated and the caller re-renders it.
func (o *Orchestrator[T]) persist(ctx context.Context, req *domain.Request, form *domain.FormSubmission[T], action string) (domain.Result, bool, error) {
	var saved domain.SaveResult[T]
	if action == domain.ActionCreate {
		saved = o.c.Manager.Create(ctx, form.Subject)
	} else {
		saved = o.c.Manager.Update(ctx, form.Subject)
	}

	switch saved.Status {
	case domain.SaveOK:
		obj := saved.Object
		form.Subject = obj
		o.logger.InfoContext(ctx, "object saved",
			slog.String("operation", action),
			slog.String("id", o.c.Manager.ObjectID(obj)),
		)
		if req.IsXHR() {
			return domain.JSON(domain.Reply{
				Result:     domain.ReplyOK,
				ObjectID:   o.c.Manager.ObjectID(obj),
				ObjectName: o.c.Manager.ToString(obj),
			}, http.StatusOK), true, nil
		}
		o.flash(ctx, req, domain.FlashSuccess, successKey(action), o.nameParams(obj), DefaultTranslationDomain)
		return domain.Redirect(o.redirectTo(ctx, req, obj, false)), true, nil

	case domain.SaveValidationConflict:
		form.AddErrors(saved.Fields)

	case domain.SaveLockConflict:
		if action == domain.ActionEdit {
			id := o.c.Manager.ObjectID(form.Subject)
			o.logger.WarnContext(ctx, "optimistic lock conflict",
				slog.String("operation", action),
				slog.String("id", id),
				slog.Any("error", saved.Err),
			)
			params := o.nameParams(form.Subject)
			params["%link_start%"] = `<a href="` + template.HTMLEscapeString(o.res.Routes.GenerateObject(domain.ActionEdit, id, nil)) + `">`
			params["%link_end%"] = "</a>"
			o.flash(ctx, req, domain.FlashError, MsgLockError, params, DefaultTranslationDomain)
			return domain.Result{}, false, nil
		}
		fallthrough

	default:
		if err := o.c.Exceptions.Translate(ctx, persistenceError(action, saved.Err)); err != nil {
			return domain.Result{}, true, err
		}
		form.Invalidate()
	}

	return domain.Result{}, false, nil
}

// List renders the datagrid.
func (o *Orchestrator[T]) List(ctx context.Context, req *domain.Request) (domain.Result, error) {
	if err := o.checkAccess(ctx, req, domain.ActionList, ""); err != nil {
		return domain.Result{}, err
	}

	if hook := o.c.Hooks.PreList; hook != nil {
		res, err := hook(ctx, req)
		if err != nil || res != nil {
			return deref(res), err
		}
	}

	if mode := req.Get(domain.ParamListMode); mode != "" {
		o.setSession(ctx, req, sessionListMode, mode)
	}
	listMode := o.getSession(ctx, req, sessionListMode)
	if listMode == "" {
		listMode = "list"
	}

	grid := o.datagrid(ctx, req)
	objects, total, err := o.c.Manager.Query(ctx, grid.Query)
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to query list",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return domain.Result{}, err
	}

	rows := make([]Row, 0, len(objects))
	for _, obj := range objects {
		rows = append(rows, Row{
			ID:     o.c.Manager.ObjectID(obj),
			Name:   o.c.Manager.ToString(obj),
			Fields: o.elements(obj),
		})
	}

	var batchActions []BatchActionView
	if o.batch != nil {
		batchActions = o.batch.Available(ctx, req)
	}

	return o.render(req, domain.ActionList, domain.TemplateList, map[string]any{
		"datagrid":      grid,
		"rows":          rows,
		"total":         total,
		"page":          grid.Query.Page,
		"pages":         grid.Query.Pages(total),
		"listMode":      listMode,
		"batchActions":  batchActions,
		"exportFormats": o.res.ExportFormats,
		"csrfToken":     o.csrfToken(ctx, req, domain.IntentionBatch),
	}), nil
}

// Row is one rendered list line.
type Row struct {
	ID     string
	Name   string
	Fields []domain.Field
}

// Show renders the read-only view of an object.
func (o *Orchestrator[T]) Show(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	obj, err := o.find(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	if err := o.checkAccess(ctx, req, domain.ActionShow, id); err != nil {
		return domain.Result{}, err
	}

	if hook := o.c.Hooks.PreShow; hook != nil {
		res, err := hook(ctx, req, obj)
		if err != nil || res != nil {
			return deref(res), err
		}
	}

	return o.render(req, domain.ActionShow, domain.TemplateShow, map[string]any{
		"object":   obj,
		"objectId": id,
		"elements": o.elements(obj),
	}), nil
}

// Delete renders the confirmation page on GET and deletes on POST or DELETE.
func (o *Orchestrator[T]) Delete(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	obj, err := o.find(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	if err := o.checkAccess(ctx, req, domain.ActionDelete, id); err != nil {
		return domain.Result{}, err
	}

	if hook := o.c.Hooks.PreDelete; hook != nil {
		res, err := hook(ctx, req, obj)
		if err != nil || res != nil {
			return deref(res), err
		}
	}

	method := req.RestMethod()
	if method != http.MethodDelete && method != http.MethodPost {
		return o.render(req, domain.ActionDelete, domain.TemplateDelete, map[string]any{
			"object":    obj,
			"objectId":  id,
			"csrfToken": o.csrfToken(ctx, req, domain.IntentionDelete),
		}), nil
	}

	if err := o.checkCsrf(ctx, req, domain.IntentionDelete); err != nil {
		return domain.Result{}, err
	}

	params := o.nameParams(obj)
	if err := o.c.Manager.Delete(ctx, obj); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			o.logger.ErrorContext(ctx, "failed to delete object",
				slog.String("operation", "Delete"),
				slog.String("id", id),
				slog.Any("error", err),
			)
			return domain.Result{}, err
		}
		if terr := o.c.Exceptions.Translate(ctx, err); terr != nil {
			return domain.Result{}, terr
		}
		if req.IsXHR() {
			return domain.JSON(domain.Reply{Result: domain.ReplyError}, http.StatusOK), nil
		}
		o.flash(ctx, req, domain.FlashError, MsgDeleteError, params, DefaultTranslationDomain)
	} else {
		o.logger.InfoContext(ctx, "object deleted", slog.String("id", id))
		if req.IsXHR() {
			return domain.JSON(domain.Reply{Result: domain.ReplyOK}, http.StatusOK), nil
		}
		o.flash(ctx, req, domain.FlashSuccess, MsgDeleteSuccess, params, DefaultTranslationDomain)
	}

	return domain.Redirect(o.redirectTo(ctx, req, obj, true)), nil
}

// Export writes the full filtered selection in an allowed format.
func (o *Orchestrator[T]) Export(ctx context.Context, req *domain.Request) (domain.Result, error) {
	if err := o.checkAccess(ctx, req, domain.ActionExport, ""); err != nil {
		return domain.Result{}, err
	}

	format := req.Get(domain.ParamFormat)
	if !o.res.IsExportFormatAllowed(format) || o.c.Exporter == nil {
		return domain.Result{}, fmt.Errorf("%w: export in format `%s` is not allowed for class: `%s`. Allowed formats are: `%s`",
			domain.ErrExportFormat, format, o.res.Class, strings.Join(o.res.ExportFormats, ", "))
	}

	q := o.datagrid(ctx, req).Query.DisablePagination()
	objects, _, err := o.c.Manager.Query(ctx, q)
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to query export",
			slog.String("operation", "Export"),
			slog.Any("error", err),
		)
		return domain.Result{}, err
	}

	var header []string
	rows := make([][]string, 0, len(objects))
	for i, obj := range objects {
		fields := o.elements(obj)
		if i == 0 {
			for _, f := range fields {
				header = append(header, f.Name)
			}
		}
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			row = append(row, f.Value)
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	if err := o.c.Exporter.Export(ctx, format, &buf, header, rows); err != nil {
		return domain.Result{}, fmt.Errorf("exporting %s: %w", format, err)
	}

	filename := fmt.Sprintf("export_%s_%s.%s",
		strings.ToLower(o.res.Class), o.c.Now().Format("2006_01_02_15_04_05"), format)
	return domain.Download(filename, o.c.Exporter.ContentType(format), buf.Bytes()), nil
}

// ACL renders and updates the object ACL editor.
func (o *Orchestrator[T]) ACL(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	if !o.res.ACLEnabled || o.c.ACL == nil {
		return domain.Result{}, &domain.NotFoundError{Detail: "ACL are not enabled for this admin"}
	}

	if _, err := o.find(ctx, id); err != nil {
		return domain.Result{}, err
	}
	if err := o.checkAccess(ctx, req, domain.ActionACL, id); err != nil {
		return domain.Result{}, err
	}

	acl, err := o.c.ACL.ObjectACL(ctx, o.res.Class, id)
	if err != nil {
		return domain.Result{}, err
	}

	if req.IsSubmission() {
		if err := o.checkCsrf(ctx, req, domain.IntentionACL); err != nil {
			return domain.Result{}, err
		}
		updated := parseACL(req.Params)
		if err := o.c.ACL.UpdateObjectACL(ctx, o.res.Class, id, updated); err != nil {
			o.logger.ErrorContext(ctx, "failed to update acl",
				slog.String("operation", "ACL"),
				slog.String("id", id),
				slog.Any("error", err),
			)
			return domain.Result{}, err
		}
		o.flash(ctx, req, domain.FlashSuccess, MsgACLSuccess, nil, DefaultTranslationDomain)
		return domain.Redirect(o.res.Routes.GenerateObject(domain.ActionACL, id, nil)), nil
	}

	return o.render(req, domain.ActionACL, domain.TemplateACL, map[string]any{
		"objectId":    id,
		"acl":         acl,
		"principals":  acl.Principals(),
		"permissions": domain.Permissions,
		"csrfToken":   o.csrfToken(ctx, req, domain.IntentionACL),
	}), nil
}

// parseACL reads acl[<principal>][] parameters. A new principal may be
// added through acl_principal plus acl_permissions[].
func parseACL(params url.Values) domain.ACL {
	acl := domain.ACL{}
	for key, vals := range params {
		if !strings.HasPrefix(key, "acl[") {
			continue
		}
		principal := strings.TrimSuffix(strings.TrimSuffix(strings.TrimPrefix(key, "acl["), "[]"), "]")
		if principal == "" {
			continue
		}
		acl[principal] = permissionsOf(vals)
	}
	if p := strings.TrimSpace(params.Get("acl_principal")); p != "" {
		acl[p] = permissionsOf(params["acl_permissions[]"])
	}
	for p, perms := range acl {
		if len(perms) == 0 {
			delete(acl, p)
		}
	}
	return acl
}

func permissionsOf(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		v = strings.ToUpper(strings.TrimSpace(v))
		for _, known := range domain.Permissions {
			if v == known {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

func (o *Orchestrator[T]) elements(obj T) []domain.Field {
	if o.c.Show == nil {
		return nil
	}
	return o.c.Show.Elements(obj)
}

func persistenceError(op string, err error) error {
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}

func successKey(action string) string {
	if action == domain.ActionCreate {
		return MsgCreateSuccess
	}
	return MsgEditSuccess
}

func errorKey(action string) string {
	if action == domain.ActionCreate {
		return MsgCreateError
	}
	return MsgEditError
}

func deref(res *domain.Result) domain.Result {
	if res == nil {
		return domain.Result{}
	}
	return *res
}
