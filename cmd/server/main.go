// Command server runs the admin back office. APP_PROFILE selects the config
// profile; the dependency graph is wired with samber/do and the process
// drains in-flight requests on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/clients/articleapi"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/export"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/forms"
	adapthttp "github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/render"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/security"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/session"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/go-admin-workflow/internal/app"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/config"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/health"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/i18n"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "admin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cleanup cleanupStack
	defer cleanup.run(logger)

	tp, mp, metrics, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	if tp != nil {
		cleanup.push("telemetry", otelShutdownTimeout, func(ctx context.Context) error {
			return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
		})
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph, health checkers included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring dependencies: %w", err)
	}
	backend := do.MustInvoke[*storageBackend](injector)
	cleanup.push("storage", 0, func(context.Context) error { return backend.Close() })

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("cause", context.Cause(ctx).Error()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining requests", slog.Any("error", err))
	}
	<-serverErr
	return nil
}

// cleanupStack releases process resources in reverse acquisition order.
type cleanupStack []cleanupStep

type cleanupStep struct {
	name    string
	timeout time.Duration // zero means no deadline
	fn      func(context.Context) error
}

func (s *cleanupStack) push(name string, timeout time.Duration, fn func(context.Context) error) {
	*s = append(*s, cleanupStep{name: name, timeout: timeout, fn: fn})
}

func (s cleanupStack) run(logger *slog.Logger) {
	for _, step := range slices.Backward(s) {
		ctx, cancel := context.Background(), context.CancelFunc(func() {})
		if step.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, step.timeout)
		}
		if err := step.fn(ctx); err != nil {
			logger.Error("cleanup failed", slog.String("resource", step.name), slog.Any("error", err))
		}
		cancel()
	}
	logger.Info("shutdown complete")
}

// initTelemetry returns nil providers and nil metrics when telemetry is off;
// every instrumented component accepts a nil *telemetry.Metrics.
func initTelemetry(ctx context.Context, cfg *config.Config) (*sdktrace.TracerProvider, *sdkmetric.MeterProvider, *telemetry.Metrics, error) {
	t := cfg.Telemetry
	if !t.Enabled {
		return nil, nil, nil, nil
	}

	tp, err := telemetry.InitTracer(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		return nil, nil, nil, err
	}
	mp, err := telemetry.InitMeter(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		return nil, nil, nil, errors.Join(err, tp.Shutdown(ctx))
	}
	metrics, err := telemetry.NewMetrics(mp, t.ServiceName)
	if err != nil {
		return nil, nil, nil, errors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}
	return tp, mp, metrics, nil
}

// storageBackend bundles the persistence collaborators selected by
// storage.driver. audit and acl are nil for the remote driver.
type storageBackend struct {
	manager  ports.ModelManager[*article.Article]
	audit    ports.AuditManager[*article.Article]
	acl      ports.ACLManager
	checkers []ports.HealthChecker
	close    func() error
}

// Close releases the backend. Nil-safe.
func (b *storageBackend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

func newStorageBackend(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*storageBackend, error) {
	switch cfg.Storage.Driver {
	case "remote":
		client := httpclient.New(&cfg.Client, articleapi.ServiceName, metrics, logger)
		return &storageBackend{
			manager:  articleapi.NewClient(client, logger),
			checkers: []ports.HealthChecker{client},
		}, nil
	default:
		store, err := sqlite.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &storageBackend{
			manager:  store.Articles(),
			audit:    store.Audit(),
			acl:      store.ACLs(),
			checkers: []ports.HealthChecker{store},
			close:    store.Close,
		}, nil
	}
}

// sessionBackend wraps the session store so the container can tell it apart
// from other ports.SessionStore providers.
type sessionBackend struct {
	store ports.SessionStore
}

// articleResource describes the article admin from the admin settings.
// Export formats are limited to those the exporter can write.
func articleResource(cfg config.AdminConfig, exporter ports.Exporter) *app.Resource {
	var formats []string
	for _, f := range cfg.ExportFormats {
		if slices.Contains(exporter.Formats(), f) {
			formats = append(formats, f)
		}
	}
	basePath := strings.TrimRight(cfg.BasePath, "/") + "/" + article.Class
	return &app.Resource{
		Name:              article.Class,
		Class:             article.Class,
		Label:             "Article",
		IDParam:           handlers.ParamID,
		TranslationDomain: article.Class,
		SupportsPreview:   cfg.SupportsPreview,
		ACLEnabled:        cfg.ACLEnabled,
		SubClasses:        []string{article.KindNews, article.KindFeature},
		ExportFormats:     formats,
		PerPage:           cfg.PerPage,
		PersistFilters:    cfg.PersistFilters,
		Routes:            app.NewRoutes(basePath),
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*storageBackend, error) {
		backend, err := newStorageBackend(cfg, do.MustInvoke[*telemetry.Metrics](i), logger)
		if err != nil {
			return nil, err
		}
		registry := do.MustInvoke[ports.HealthRegistry](i)
		for _, c := range backend.checkers {
			registry.Register(c)
		}
		return backend, nil
	})

	do.Provide(injector, func(i do.Injector) (*sessionBackend, error) {
		store, checker, err := session.New(cfg.Session)
		if err != nil {
			return nil, fmt.Errorf("creating session store: %w", err)
		}
		if checker != nil {
			do.MustInvoke[ports.HealthRegistry](i).Register(checker)
		}
		return &sessionBackend{store: store}, nil
	})

	do.Provide(injector, func(_ do.Injector) (*i18n.Translator, error) {
		return i18n.Load(cfg.I18n.CatalogDir, cfg.I18n.DefaultLocale, cfg.I18n.Locales)
	})

	do.Provide(injector, func(i do.Injector) (ports.TemplateRenderer, error) {
		return render.New(do.MustInvoke[*i18n.Translator](i))
	})

	do.Provide(injector, func(_ do.Injector) (ports.CsrfManager, error) {
		return security.NewCsrfTokens(cfg.Security.CsrfSecret, cfg.Security.CsrfTTL)
	})

	do.Provide(injector, func(i do.Injector) (*app.AdminService[*article.Article], error) {
		backend := do.MustInvoke[*storageBackend](i)
		sessions := do.MustInvoke[*sessionBackend](i)
		translator := do.MustInvoke[*i18n.Translator](i)
		csrf := do.MustInvoke[ports.CsrfManager](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		exporter := export.NewWriter()
		form := forms.NewArticleForm()
		res := articleResource(cfg.Admin, exporter)

		c := app.Collaborators[*article.Article]{
			Manager:    backend.manager,
			Binder:     form,
			Show:       form,
			Audit:      backend.audit,
			Access:     security.NewRoleAccess(cfg.Admin.Roles, article.Class, backend.acl, logger),
			Csrf:       csrf,
			Translator: translator,
			Session:    sessions.store,
			Exporter:   exporter,
			ACL:        backend.acl,
			Exceptions: app.NewExceptionTranslator(cfg.Admin.Debug, logger),
			Logger:     logger,
			Metrics:    metrics,
		}

		publishSpec, publish := app.PublishBatchAction(backend.manager, logger)
		return app.NewAdminService(res, c,
			[]domain.BatchActionSpec{app.DeleteBatchAction(), publishSpec},
			map[string]app.BatchHandler{app.BatchPublish: publish},
		)
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AdminHandler, error) {
		svc := do.MustInvoke[*app.AdminService[*article.Article]](i)
		renderer := do.MustInvoke[ports.TemplateRenderer](i)
		return handlers.NewAdminHandler(svc, renderer, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		adminH := do.MustInvoke[*handlers.AdminHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		translator := do.MustInvoke[*i18n.Translator](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		adminMW := middleware.AdminStack(middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.CookieSecure,
			TTL:        cfg.Session.TTL,
		}, translator.Match)

		return adapthttp.NewRouter(cfg.Admin.BasePath, []*handlers.AdminHandler{adminH}, healthH, adminMW,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
