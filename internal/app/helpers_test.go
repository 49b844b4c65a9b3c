package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/i18n"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
	"github.com/jsamuelsen11/go-admin-workflow/mocks"
)

const testSession = "sess-1"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testResource() *Resource {
	return &Resource{
		Name:              "article",
		Class:             article.Class,
		IDParam:           "id",
		TranslationDomain: "article",
		SubClasses:        []string{article.KindNews, article.KindFeature},
		ExportFormats:     []string{"csv", "json"},
		PerPage:           25,
		Routes:            NewRoutes("/admin/article"),
	}
}

func newRequest(method string, params url.Values) *domain.Request {
	if params == nil {
		params = url.Values{}
	}
	return &domain.Request{
		Method:    method,
		Params:    params,
		Actor:     domain.Actor{Username: "alice", Roles: []string{"ROLE_ADMIN"}},
		SessionID: testSession,
		Locale:    "en",
	}
}

func post(params url.Values) *domain.Request {
	return newRequest(http.MethodPost, params)
}

func storedArticle(id int64) *article.Article {
	return &article.Article{
		ID:      id,
		Kind:    article.KindNews,
		Title:   "Hello",
		Body:    "World",
		Status:  article.StatusDraft,
		Version: 1,
	}
}

// fixture bundles the mocked collaborators of one engine under test.
type fixture struct {
	manager *mocks.MockModelManager[*article.Article]
	binder  *mocks.MockFormBinder[*article.Article]
	show    *mocks.MockShowBuilder[*article.Article]
	audit   *mocks.MockAuditManager[*article.Article]
	access  *mocks.MockAccessChecker
	csrf    *mocks.MockCsrfManager
	session *mocks.MockSessionStore
	exports *mocks.MockExporter
	acl     *mocks.MockACLManager

	// translator is nil unless a test needs real messages.
	translator ports.Translator

	hooks Hooks[*article.Article]
	debug bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		manager: mocks.NewMockModelManager[*article.Article](t),
		binder:  mocks.NewMockFormBinder[*article.Article](t),
		show:    mocks.NewMockShowBuilder[*article.Article](t),
		audit:   mocks.NewMockAuditManager[*article.Article](t),
		access:  mocks.NewMockAccessChecker(t),
		csrf:    mocks.NewMockCsrfManager(t),
		session: mocks.NewMockSessionStore(t),
		exports: mocks.NewMockExporter(t),
		acl:     mocks.NewMockACLManager(t),
	}

	f.manager.EXPECT().ObjectID(mock.Anything).
		RunAndReturn(func(a *article.Article) string { return a.ObjectID() }).Maybe()
	f.manager.EXPECT().ToString(mock.Anything).
		RunAndReturn(func(a *article.Article) string { return a.String() }).Maybe()
	f.show.EXPECT().Elements(mock.Anything).
		RunAndReturn(func(a *article.Article) []domain.Field { return a.Elements() }).Maybe()
	f.csrf.EXPECT().Token(mock.Anything, mock.Anything, mock.Anything).Return("fresh-token", nil).Maybe()

	return f
}

// deny makes action forbidden. Must be called before grantAll.
func (f *fixture) deny(action string) {
	f.access.EXPECT().IsGranted(mock.Anything, mock.Anything, action, mock.Anything).Return(false).Maybe()
}

func (f *fixture) grantAll() {
	f.access.EXPECT().IsGranted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true).Maybe()
}

// expectFlash records the flashes stored in the session.
func (f *fixture) expectFlash(got *[]domain.Flash) {
	f.session.EXPECT().AddFlash(mock.Anything, testSession, mock.Anything).
		Run(func(_ context.Context, _ string, fl domain.Flash) { *got = append(*got, fl) }).
		Return(nil).Maybe()
}

func (f *fixture) collaborators() Collaborators[*article.Article] {
	return Collaborators[*article.Article]{
		Manager:    f.manager,
		Binder:     f.binder,
		Show:       f.show,
		Audit:      f.audit,
		Access:     f.access,
		Csrf:       f.csrf,
		Session:    f.session,
		Exporter:   f.exports,
		ACL:        f.acl,
		Translator: f.translator,
		Exceptions: NewExceptionTranslator(f.debug, discardLogger()),
		Hooks:      f.hooks,
		Logger:     discardLogger(),
		Now:        func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) },
	}
}

func flashKeys(flashes []domain.Flash) []string {
	keys := make([]string, 0, len(flashes))
	for _, f := range flashes {
		keys = append(keys, f.Key)
	}
	return keys
}

// shippedCatalog loads the message catalogs the server ships with.
func shippedCatalog(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.Load(filepath.Join("..", "..", "configs", "i18n"), "en", []string{"en", "fr"})
	if err != nil {
		t.Fatalf("i18n.Load() error = %v", err)
	}
	return tr
}
