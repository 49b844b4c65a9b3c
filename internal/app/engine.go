// Package app provides the admin workflow engine: the create/edit
// orchestrator, the batch action dispatcher and the history comparator,
// coordinating domain rules and outbound collaborators through port
// interfaces.
package app

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"maps"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// DefaultTranslationDomain holds the engine's own feedback messages.
const DefaultTranslationDomain = "admin"

// markupParams are flash placeholders whose values the engine builds itself.
// Every other value is escaped before it reaches the message.
var markupParams = []string{"%link_start%", "%link_end%"}

// Hooks are optional extension points run before an action mutates anything.
// A hook returning a non-nil Result short-circuits the action, and that
// Result is returned verbatim.
type Hooks[T any] struct {
	PreCreate func(ctx context.Context, req *domain.Request, obj T) (*domain.Result, error)
	PreEdit   func(ctx context.Context, req *domain.Request, obj T) (*domain.Result, error)
	PreDelete func(ctx context.Context, req *domain.Request, obj T) (*domain.Result, error)
	PreShow   func(ctx context.Context, req *domain.Request, obj T) (*domain.Result, error)
	PreList   func(ctx context.Context, req *domain.Request) (*domain.Result, error)

	// PreValidate runs on a submitted subject before validation.
	PreValidate func(ctx context.Context, obj T)

	// PreBatch may adjust the unpaginated query and the selection before a
	// batch action executes.
	PreBatch func(ctx context.Context, q domain.Query, b domain.BatchRequest) (domain.Query, domain.BatchRequest)
}

// Collaborators is the explicit bundle of outbound ports the engine uses.
// Manager and Binder are required; the others degrade gracefully when nil.
type Collaborators[T any] struct {
	Manager    ports.ModelManager[T]
	Binder     ports.FormBinder[T]
	Show       ports.ShowBuilder[T]
	Audit      ports.AuditManager[T]
	Access     ports.AccessChecker
	Csrf       ports.CsrfManager
	Translator ports.Translator
	Session    ports.SessionStore
	Exporter   ports.Exporter
	ACL        ports.ACLManager

	Exceptions *ExceptionTranslator
	Hooks      Hooks[T]
	Logger     *slog.Logger
	Metrics    *telemetry.Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

// engine holds what the orchestrator, dispatcher and comparator share.
type engine[T any] struct {
	res    *Resource
	c      Collaborators[T]
	logger *slog.Logger
}

func newEngine[T any](res *Resource, c Collaborators[T]) engine[T] {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Exceptions == nil {
		c.Exceptions = NewExceptionTranslator(false, c.Logger)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return engine[T]{res: res, c: c, logger: c.Logger}
}

// checkAccess fails with an error wrapping domain.ErrForbidden when the
// actor may not run action.
func (e *engine[T]) checkAccess(ctx context.Context, req *domain.Request, action, objectID string) error {
	if e.isGranted(ctx, req, action, objectID) {
		return nil
	}
	e.logger.WarnContext(ctx, "access denied",
		slog.String("action", action),
		slog.String("object_id", objectID),
		slog.String("actor", req.Actor.Username),
	)
	return domain.AccessDenied(action, objectID)
}

func (e *engine[T]) isGranted(ctx context.Context, req *domain.Request, action, objectID string) bool {
	if e.c.Access == nil {
		return true
	}
	return e.c.Access.IsGranted(ctx, req.Actor, action, objectID)
}

// find loads a subject, normalizing absence into a *domain.NotFoundError.
func (e *engine[T]) find(ctx context.Context, id string) (T, error) {
	obj, err := e.c.Manager.Find(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, domain.ErrNotFound) {
			return zero, domain.ObjectNotFound(id)
		}
		e.logger.ErrorContext(ctx, "failed to load object",
			slog.String("operation", "Find"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return zero, err
	}
	return obj, nil
}

// checkCsrf validates the _csrf_token parameter for intention.
func (e *engine[T]) checkCsrf(ctx context.Context, req *domain.Request, intention string) error {
	if e.c.Csrf == nil {
		return nil
	}
	if !e.c.Csrf.Valid(ctx, req.SessionID, intention, req.Get(domain.ParamCsrfToken)) {
		return domain.ErrCsrfInvalid
	}
	return nil
}

func (e *engine[T]) csrfToken(ctx context.Context, req *domain.Request, intention string) string {
	if e.c.Csrf == nil {
		return ""
	}
	token, err := e.c.Csrf.Token(ctx, req.SessionID, intention)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to issue csrf token",
			slog.String("intention", intention),
			slog.Any("error", err),
		)
		return ""
	}
	return token
}

func (e *engine[T]) trans(req *domain.Request, key string, params map[string]string, domainName string) string {
	if e.c.Translator == nil {
		return key
	}
	return e.c.Translator.Trans(req.Locale, key, params, domainName)
}

// flash records translated feedback for the next page load. XHR requests
// never get session feedback. The stored message is HTML: layouts print it
// unescaped, so placeholder values such as object names are escaped here.
func (e *engine[T]) flash(ctx context.Context, req *domain.Request, kind domain.FlashKind, key string, params map[string]string, domainName string) {
	if req.IsXHR() || e.c.Session == nil || req.SessionID == "" {
		return
	}
	f := domain.Flash{Kind: kind, Key: key, Message: e.trans(req, key, escapeParams(params), domainName)}
	if err := e.c.Session.AddFlash(ctx, req.SessionID, f); err != nil {
		e.logger.ErrorContext(ctx, "failed to store flash message",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (e *engine[T]) setSession(ctx context.Context, req *domain.Request, key, value string) {
	if e.c.Session == nil || req.SessionID == "" {
		return
	}
	if err := e.c.Session.Set(ctx, req.SessionID, key, value); err != nil {
		e.logger.WarnContext(ctx, "failed to store session attribute",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (e *engine[T]) getSession(ctx context.Context, req *domain.Request, key string) string {
	if e.c.Session == nil || req.SessionID == "" {
		return ""
	}
	v, _, err := e.c.Session.Get(ctx, req.SessionID, key)
	if err != nil {
		e.logger.WarnContext(ctx, "failed to read session attribute",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	return v
}

// view assembles the template context shared by every rendered page.
func (e *engine[T]) view(req *domain.Request, action string, extra map[string]any) map[string]any {
	data := map[string]any{
		"admin":  e.res,
		"action": action,
		"actor":  req.Actor,
		"locale": req.Locale,
	}
	maps.Copy(data, extra)
	return data
}

func (e *engine[T]) render(req *domain.Request, action, templateKey string, extra map[string]any) domain.Result {
	return domain.Render(e.res.Template(templateKey), e.view(req, action, extra))
}

// listURL returns the list URL carrying the active filters.
func (e *engine[T]) listURL(ctx context.Context, req *domain.Request) string {
	return e.res.Routes.Generate(domain.ActionList, e.filterValues(ctx, req))
}

func (e *engine[T]) redirectToList(ctx context.Context, req *domain.Request) domain.Result {
	return domain.Redirect(e.listURL(ctx, req))
}

func escapeParams(params map[string]string) map[string]string {
	if len(params) == 0 {
		return params
	}
	out := make(map[string]string, len(params))
	for placeholder, value := range params {
		if !slices.Contains(markupParams, placeholder) {
			value = template.HTMLEscapeString(value)
		}
		out[placeholder] = value
	}
	return out
}

func (e *engine[T]) nameParams(obj T) map[string]string {
	return map[string]string{"%name%": e.c.Manager.ToString(obj)}
}

func (e *engine[T]) recordAction(ctx context.Context, action string, err error) {
	if e.c.Metrics == nil || e.c.Metrics.AdminActionTotal == nil {
		return
	}
	e.c.Metrics.AdminActionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrAdminResource.String(e.res.Name),
		telemetry.AttrAdminAction.String(action),
		telemetry.AttrResult.String(outcome(err)),
	))
}

func (e *engine[T]) recordBatch(ctx context.Context, action, result string) {
	if e.c.Metrics == nil || e.c.Metrics.AdminBatchTotal == nil {
		return
	}
	e.c.Metrics.AdminBatchTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("admin.batch.action", action),
		telemetry.AttrAdminResource.String(e.res.Name),
		telemetry.AttrResult.String(result),
	))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrCsrfInvalid):
		return "csrf_invalid"
	default:
		return "error"
	}
}
