package app

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/forms"
	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/render"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
)

const scriptTitle = `<script>alert(1)</script>`

// renderFlashes prints flashes through the shipped layout.
func renderFlashes(t *testing.T, f *fixture, flashes []domain.Flash) string {
	t.Helper()
	r, err := render.New(f.translator)
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, "error", map[string]any{"locale": "en", "flashes": flashes}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestFlash_EscapesObjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func(f *fixture, o *Orchestrator[*article.Article]) error
		wantKey string
		wantRaw string
	}{
		{
			name: "create success",
			run: func(f *fixture, o *Orchestrator[*article.Article]) error {
				blank := article.New("")
				f.manager.EXPECT().NewInstance("").Return(blank)
				f.manager.EXPECT().Create(mock.Anything, blank).
					RunAndReturn(func(_ context.Context, a *article.Article) domain.SaveResult[*article.Article] {
						a.ID = 7
						return domain.Saved(a)
					}).Once()
				_, err := o.Create(context.Background(), post(url.Values{
					"title": {scriptTitle}, "body": {"World"}, "status": {"draft"},
				}))
				return err
			},
			wantKey: MsgCreateSuccess,
		},
		{
			name: "lock conflict keeps the reload link",
			run: func(f *fixture, o *Orchestrator[*article.Article]) error {
				stored := storedArticle(7)
				stored.Title = scriptTitle
				f.manager.EXPECT().Find(mock.Anything, "7").Return(stored, nil)
				f.manager.EXPECT().Update(mock.Anything, stored).
					Return(domain.LockConflict[*article.Article](domain.ErrConflict)).Once()
				_, err := o.Edit(context.Background(), post(url.Values{"body": {"Edited"}}), "7")
				return err
			},
			wantKey: MsgLockError,
			wantRaw: `<a href="/admin/article/7/edit">click here</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.grantAll()
			f.translator = shippedCatalog(t)
			var flashes []domain.Flash
			f.expectFlash(&flashes)

			c := f.collaborators()
			c.Binder = forms.NewArticleForm()
			o := NewOrchestrator(testResource(), c, nil)

			if err := tt.run(f, o); err != nil {
				t.Fatalf("action error = %v", err)
			}
			if len(flashes) != 1 || flashes[0].Key != tt.wantKey {
				t.Fatalf("flashes = %+v, want one %s", flashes, tt.wantKey)
			}

			page := renderFlashes(t, f, flashes)
			if strings.Contains(page, scriptTitle) {
				t.Errorf("rendered page contains the raw title:\n%s", page)
			}
			if !strings.Contains(page, "&lt;script&gt;alert(1)&lt;/script&gt;") {
				t.Errorf("rendered page lacks the escaped title:\n%s", page)
			}
			if tt.wantRaw != "" && !strings.Contains(page, tt.wantRaw) {
				t.Errorf("rendered page lacks %q:\n%s", tt.wantRaw, page)
			}
		})
	}
}

func TestEscapeParams(t *testing.T) {
	t.Parallel()

	got := escapeParams(map[string]string{
		"%name%":       `"a" & <b>`,
		"%link_start%": `<a href="/x">`,
		"%link_end%":   "</a>",
	})
	want := map[string]string{
		"%name%":       "&#34;a&#34; &amp; &lt;b&gt;",
		"%link_start%": `<a href="/x">`,
		"%link_end%":   "</a>",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("escapeParams()[%s] = %q, want %q", k, got[k], v)
		}
	}
	if escapeParams(nil) != nil {
		t.Error("escapeParams(nil) should stay nil")
	}
}
