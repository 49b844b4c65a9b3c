package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
)

func submitted(a *article.Article, params url.Values) *domain.FormSubmission[*article.Article] {
	return &domain.FormSubmission[*article.Article]{Subject: a, Submitted: true, Values: params}
}

func TestOrchestrator_Create_RendersBlankFormOnGet(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.grantAll()

	blank := article.New("")
	f.manager.EXPECT().NewInstance("").Return(blank)
	f.binder.EXPECT().Bind(mock.Anything, blank, mock.Anything).
		Return(&domain.FormSubmission[*article.Article]{Subject: blank}, nil)

	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	res, err := o.Create(context.Background(), newRequest(http.MethodGet, nil))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if res.Kind != domain.ResultRender || res.Template != domain.TemplateEdit {
		t.Errorf("Create() = %v %q, want render %q", res.Kind, res.Template, domain.TemplateEdit)
	}
}

func TestOrchestrator_Create_PersistsAndRedirects(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.grantAll()
	var flashes []domain.Flash
	f.expectFlash(&flashes)

	params := url.Values{"title": {"Hello"}}
	blank := article.New("")
	f.manager.EXPECT().NewInstance("").Return(blank)
	f.binder.EXPECT().Bind(mock.Anything, blank, mock.Anything).Return(submitted(blank, params), nil)
	f.binder.EXPECT().Validate(mock.Anything, blank).Return(nil)
	f.manager.EXPECT().Create(mock.Anything, blank).Return(domain.Saved(storedArticle(7))).Once()

	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	res, err := o.Create(context.Background(), post(params))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if res.Kind != domain.ResultRedirect || res.URL != "/admin/article/7/edit" {
		t.Errorf("Create() = %v %q, want redirect to edit", res.Kind, res.URL)
	}
	if !slices.Equal(flashKeys(flashes), []string{MsgCreateSuccess}) {
		t.Errorf("flashes = %v, want [%s]", flashKeys(flashes), MsgCreateSuccess)
	}
}

func TestOrchestrator_Create_AbstractWithoutSubclass(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.grantAll()

	res := testResource()
	res.Abstract = true

	o := NewOrchestrator(res, f.collaborators(), nil)
	got, err := o.Create(context.Background(), newRequest(http.MethodGet, url.Values{"subclass": {"unknown"}}))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.Template != domain.TemplateSelectSubclass {
		t.Errorf("Template = %q, want %q", got.Template, domain.TemplateSelectSubclass)
	}
}

func TestOrchestrator_Create_PreHookShortCircuits(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.grantAll()
	f.hooks.PreCreate = func(context.Context, *domain.Request, *article.Article) (*domain.Result, error) {
		r := domain.Redirect("/elsewhere")
		return &r, nil
	}

	f.manager.EXPECT().NewInstance("").Return(article.New(""))

	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	res, err := o.Create(context.Background(), post(nil))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if res.URL != "/elsewhere" {
		t.Errorf("Create() URL = %q, want hook result", res.URL)
	}
}

func TestOrchestrator_Create_PreviewStages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		supports     bool
		params       url.Values
		wantPersist  bool
		wantTemplate string
	}{
		{name: "requested renders preview", supports: true, params: url.Values{"btn_preview": {""}}, wantTemplate: domain.TemplatePreview},
		{name: "approved persists", supports: true, params: url.Values{"btn_preview_approve": {""}}, wantPersist: true},
		{name: "declined re-renders form", supports: true, params: url.Values{"btn_preview_decline": {""}}, wantTemplate: domain.TemplateEdit},
		{name: "no signal re-renders form", supports: true, params: url.Values{}, wantTemplate: domain.TemplateEdit},
		{name: "unsupported ignores request", supports: false, params: url.Values{"btn_preview": {""}}, wantPersist: true},
		{name: "unsupported ignores decline", supports: false, params: url.Values{"btn_preview_decline": {""}}, wantPersist: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.grantAll()
			var flashes []domain.Flash
			f.expectFlash(&flashes)

			blank := article.New("")
			f.manager.EXPECT().NewInstance("").Return(blank)
			f.binder.EXPECT().Bind(mock.Anything, blank, mock.Anything).Return(submitted(blank, tt.params), nil)
			f.binder.EXPECT().Validate(mock.Anything, blank).Return(nil)
			if tt.wantPersist {
				f.manager.EXPECT().Create(mock.Anything, blank).Return(domain.Saved(storedArticle(3))).Once()
			}

			res := testResource()
			res.SupportsPreview = tt.supports
			o := NewOrchestrator(res, f.collaborators(), nil)

			got, err := o.Create(context.Background(), post(tt.params))
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if tt.wantPersist {
				if got.Kind != domain.ResultRedirect {
					t.Errorf("Kind = %v, want redirect after persistence", got.Kind)
				}
				return
			}
			if got.Template != tt.wantTemplate {
				t.Errorf("Template = %q, want %q", got.Template, tt.wantTemplate)
			}
			if tt.wantTemplate == domain.TemplatePreview && got.Data["elements"] == nil {
				t.Error("preview should materialize show elements")
			}
		})
	}
}

func TestOrchestrator_Create_InvalidSubmission(t *testing.T) {
	t.Parallel()

	t.Run("browser gets error feedback and form", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()
		var flashes []domain.Flash
		f.expectFlash(&flashes)

		blank := article.New("")
		f.manager.EXPECT().NewInstance("").Return(blank)
		f.binder.EXPECT().Bind(mock.Anything, blank, mock.Anything).Return(submitted(blank, nil), nil)
		f.binder.EXPECT().Validate(mock.Anything, blank).Return(map[string]string{"title": domain.MsgRequired})

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		res, err := o.Create(context.Background(), post(nil))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if res.Template != domain.TemplateEdit {
			t.Errorf("Template = %q, want edit", res.Template)
		}
		form := res.Data["form"].(*domain.FormSubmission[*article.Article])
		if form.Valid {
			t.Error("form.Valid = true, want false")
		}
		if !slices.Equal(flashKeys(flashes), []string{MsgCreateError}) {
			t.Errorf("flashes = %v", flashKeys(flashes))
		}
	})

	t.Run("xhr json client gets error payload without feedback", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()

		blank := article.New("")
		f.manager.EXPECT().NewInstance("").Return(blank)
		f.binder.EXPECT().Bind(mock.Anything, blank, mock.Anything).Return(submitted(blank, nil), nil)
		f.binder.EXPECT().Validate(mock.Anything, blank).Return(map[string]string{"title": domain.MsgRequired})

		req := post(nil)
		req.XHR = true
		req.AcceptsJSON = true

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		res, err := o.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		reply, ok := res.Payload.(domain.Reply)
		if res.Kind != domain.ResultJSON || !ok || reply.Result != domain.ReplyError || res.Status != http.StatusOK {
			t.Errorf("Create() = %+v, want JSON error reply with 200", res)
		}
		if reply.Errors["title"] == "" {
			t.Errorf("reply.Errors = %v, want title error", reply.Errors)
		}
	})
}

func TestOrchestrator_Edit_XHRSuccessReturnsJSON(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.grantAll()

	obj := storedArticle(5)
	params := url.Values{"title": {"Hello"}, "_xml_http_request": {"1"}}
	f.manager.EXPECT().Find(mock.Anything, "5").Return(obj, nil)
	f.binder.EXPECT().Bind(mock.Anything, obj, mock.Anything).Return(submitted(obj, params), nil)
	f.binder.EXPECT().Validate(mock.Anything, obj).Return(nil)
	f.manager.EXPECT().Update(mock.Anything, obj).Return(domain.Saved(obj)).Once()

	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	res, err := o.Edit(context.Background(), post(params), "5")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}

	want := domain.Reply{Result: domain.ReplyOK, ObjectID: "5", ObjectName: "Hello"}
	if res.Kind != domain.ResultJSON || res.Status != http.StatusOK {
		t.Fatalf("Edit() = %v/%d, want JSON 200", res.Kind, res.Status)
	}
	if got := res.Payload.(domain.Reply); got.Result != want.Result || got.ObjectID != want.ObjectID || got.ObjectName != want.ObjectName {
		t.Errorf("Payload = %+v, want %+v", got, want)
	}
	// No AddFlash expectation is registered: any feedback would fail the mock.
}

func TestOrchestrator_Edit_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.manager.EXPECT().Find(mock.Anything, "404").Return(nil, domain.ErrNotFound)

	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	_, err := o.Edit(context.Background(), newRequest(http.MethodGet, nil), "404")

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.ID != "404" {
		t.Fatalf("Edit() error = %v, want NotFoundError for 404", err)
	}
}

func TestOrchestrator_Edit_AccessDenied(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.deny(domain.ActionEdit)

	f.manager.EXPECT().Find(mock.Anything, "5").Return(storedArticle(5), nil)

	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	_, err := o.Edit(context.Background(), post(nil), "5")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Edit() error = %v, want ErrForbidden", err)
	}
}

func TestOrchestrator_Edit_SaveFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		saved     domain.SaveResult[*article.Article]
		debug     bool
		wantErr   error
		wantValid bool
		wantFlash string
		wantField string
	}{
		{
			name:      "persistence failure is recovered",
			saved:     domain.PersistenceFailure[*article.Article](errors.New("disk full")),
			wantFlash: MsgEditError,
		},
		{
			name:    "persistence failure propagates in debug",
			saved:   domain.PersistenceFailure[*article.Article](errors.New("disk full")),
			debug:   true,
			wantErr: domain.ErrPersistence,
		},
		{
			name:      "lock conflict keeps validity",
			saved:     domain.LockConflict[*article.Article](domain.ErrConflict),
			wantValid: true,
			wantFlash: MsgLockError,
		},
		{
			name:      "validation conflict merges field errors",
			saved:     domain.ValidationConflict[*article.Article](map[string]string{"title": "already used"}),
			wantFlash: MsgEditError,
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.debug = tt.debug
			f.grantAll()
			var flashes []domain.Flash
			f.expectFlash(&flashes)

			obj := storedArticle(5)
			f.manager.EXPECT().Find(mock.Anything, "5").Return(obj, nil)
			f.binder.EXPECT().Bind(mock.Anything, obj, mock.Anything).Return(submitted(obj, nil), nil)
			f.binder.EXPECT().Validate(mock.Anything, obj).Return(nil)
			f.manager.EXPECT().Update(mock.Anything, obj).Return(tt.saved).Once()

			o := NewOrchestrator(testResource(), f.collaborators(), nil)
			res, err := o.Edit(context.Background(), post(nil), "5")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Edit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Edit() error = %v", err)
			}
			if res.Template != domain.TemplateEdit {
				t.Errorf("Template = %q, want edit re-render", res.Template)
			}
			form := res.Data["form"].(*domain.FormSubmission[*article.Article])
			if form.Valid != tt.wantValid {
				t.Errorf("form.Valid = %v, want %v", form.Valid, tt.wantValid)
			}
			if tt.wantField != "" && form.Errors[tt.wantField] == "" {
				t.Errorf("form.Errors = %v, want %q", form.Errors, tt.wantField)
			}
			if !slices.Contains(flashKeys(flashes), tt.wantFlash) {
				t.Errorf("flashes = %v, want %q", flashKeys(flashes), tt.wantFlash)
			}
		})
	}
}

func TestOrchestrator_Delete(t *testing.T) {
	t.Parallel()

	t.Run("denied makes no persistence call", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.deny(domain.ActionDelete)

		f.manager.EXPECT().Find(mock.Anything, "9").Return(storedArticle(9), nil)

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		_, err := o.Delete(context.Background(), newRequest(http.MethodDelete, nil), "9")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Delete() error = %v, want ErrForbidden", err)
		}
		f.manager.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("get renders confirmation", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()

		f.manager.EXPECT().Find(mock.Anything, "9").Return(storedArticle(9), nil)

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		res, err := o.Delete(context.Background(), newRequest(http.MethodGet, nil), "9")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if res.Template != domain.TemplateDelete || res.Data["csrfToken"] != "fresh-token" {
			t.Errorf("Delete() = %q %v, want delete template with token", res.Template, res.Data["csrfToken"])
		}
	})

	t.Run("invalid csrf is rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()

		f.manager.EXPECT().Find(mock.Anything, "9").Return(storedArticle(9), nil)
		f.csrf.EXPECT().Valid(mock.Anything, testSession, domain.IntentionDelete, "bad").Return(false)

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		_, err := o.Delete(context.Background(), post(url.Values{"_csrf_token": {"bad"}}), "9")
		if !errors.Is(err, domain.ErrCsrfInvalid) {
			t.Fatalf("Delete() error = %v, want ErrCsrfInvalid", err)
		}
	})

	t.Run("delete verb redirects to list", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()
		var flashes []domain.Flash
		f.expectFlash(&flashes)

		obj := storedArticle(9)
		f.manager.EXPECT().Find(mock.Anything, "9").Return(obj, nil)
		f.csrf.EXPECT().Valid(mock.Anything, testSession, domain.IntentionDelete, "tok").Return(true)
		f.manager.EXPECT().Delete(mock.Anything, obj).Return(nil).Once()

		req := post(url.Values{"_csrf_token": {"tok"}, "_method": {"DELETE"}})
		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		res, err := o.Delete(context.Background(), req, "9")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if res.URL != "/admin/article/list" {
			t.Errorf("Delete() URL = %q, want list", res.URL)
		}
		if !slices.Equal(flashKeys(flashes), []string{MsgDeleteSuccess}) {
			t.Errorf("flashes = %v", flashKeys(flashes))
		}
	})

	t.Run("xhr persistence failure replies error", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()

		obj := storedArticle(9)
		f.manager.EXPECT().Find(mock.Anything, "9").Return(obj, nil)
		f.csrf.EXPECT().Valid(mock.Anything, testSession, domain.IntentionDelete, "tok").Return(true)
		f.manager.EXPECT().Delete(mock.Anything, obj).
			Return(&domain.PersistenceError{Op: "delete", Err: errors.New("fk violation")})

		req := post(url.Values{"_csrf_token": {"tok"}})
		req.XHR = true
		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		res, err := o.Delete(context.Background(), req, "9")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if reply, _ := res.Payload.(domain.Reply); reply.Result != domain.ReplyError {
			t.Errorf("Payload = %+v, want error reply", res.Payload)
		}
	})
}

func TestOrchestrator_Export(t *testing.T) {
	t.Parallel()

	t.Run("disallowed format is fatal", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		_, err := o.Export(context.Background(), newRequest(http.MethodGet, url.Values{"format": {"xls"}}))
		if !errors.Is(err, domain.ErrExportFormat) {
			t.Fatalf("Export() error = %v, want ErrExportFormat", err)
		}
	})

	t.Run("exports the unpaginated selection", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()

		f.manager.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q domain.Query) bool {
			return q.PerPage == 0
		})).Return([]*article.Article{storedArticle(1), storedArticle(2)}, 2, nil)
		f.exports.EXPECT().Export(mock.Anything, "csv", mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ string, w io.Writer, header []string, rows [][]string) {
				_, _ = w.Write([]byte(strings.Join(header, ",")))
				if len(rows) != 2 {
					t.Errorf("rows = %d, want 2", len(rows))
				}
			}).Return(nil)
		f.exports.EXPECT().ContentType("csv").Return("text/csv")

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		res, err := o.Export(context.Background(), newRequest(http.MethodGet, url.Values{"format": {"csv"}}))
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if res.Kind != domain.ResultDownload || res.Filename != "export_article_2026_03_04_05_06_07.csv" {
			t.Errorf("Export() = %v %q", res.Kind, res.Filename)
		}
		if !strings.HasPrefix(string(res.Body), "id,kind,title") {
			t.Errorf("Body = %q, want header row", res.Body)
		}
	})
}

func TestOrchestrator_ACL(t *testing.T) {
	t.Parallel()

	t.Run("disabled is not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		o := NewOrchestrator(testResource(), f.collaborators(), nil)
		_, err := o.ACL(context.Background(), newRequest(http.MethodGet, nil), "1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("ACL() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("post stores submitted permissions", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.grantAll()
		var flashes []domain.Flash
		f.expectFlash(&flashes)

		res := testResource()
		res.ACLEnabled = true

		f.manager.EXPECT().Find(mock.Anything, "1").Return(storedArticle(1), nil)
		f.acl.EXPECT().ObjectACL(mock.Anything, article.Class, "1").Return(domain.ACL{}, nil)
		f.csrf.EXPECT().Valid(mock.Anything, testSession, domain.IntentionACL, "tok").Return(true)
		f.acl.EXPECT().UpdateObjectACL(mock.Anything, article.Class, "1", mock.MatchedBy(func(acl domain.ACL) bool {
			return slices.Equal(acl["bob"], []string{domain.PermissionView, domain.PermissionEdit}) && len(acl) == 1
		})).Return(nil)

		params := url.Values{
			"_csrf_token": {"tok"},
			"acl[bob][]":  {"view", "EDIT", "bogus"},
			"acl[eve][]":  {},
		}
		o := NewOrchestrator(res, f.collaborators(), nil)
		got, err := o.ACL(context.Background(), post(params), "1")
		if err != nil {
			t.Fatalf("ACL() error = %v", err)
		}
		if got.URL != "/admin/article/1/acl" {
			t.Errorf("URL = %q", got.URL)
		}
		if !slices.Equal(flashKeys(flashes), []string{MsgACLSuccess}) {
			t.Errorf("flashes = %v", flashKeys(flashes))
		}
	})
}

func TestOrchestrator_List(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.grantAll()

	f.session.EXPECT().Set(mock.Anything, testSession, "list_mode", "mosaic").Return(nil)
	f.session.EXPECT().Get(mock.Anything, testSession, "list_mode").Return("mosaic", true, nil)
	f.manager.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q domain.Query) bool {
		return q.Filters["title"] == "go" && q.Page == 2 && q.PerPage == 25
	})).Return([]*article.Article{storedArticle(1)}, 30, nil)

	params := url.Values{"_list_mode": {"mosaic"}, "filter[title]": {"go"}, "filter[_page]": {"2"}}
	o := NewOrchestrator(testResource(), f.collaborators(), nil)
	res, err := o.List(context.Background(), newRequest(http.MethodGet, params))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Template != domain.TemplateList {
		t.Errorf("Template = %q", res.Template)
	}
	if res.Data["pages"] != 2 || res.Data["listMode"] != "mosaic" {
		t.Errorf("pages = %v, listMode = %v", res.Data["pages"], res.Data["listMode"])
	}
	if rows := res.Data["rows"].([]Row); len(rows) != 1 || rows[0].ID != "1" {
		t.Errorf("rows = %+v", rows)
	}
}
