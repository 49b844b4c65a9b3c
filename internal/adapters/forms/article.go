// Package forms binds admin requests onto subjects and builds their
// read-only display elements.
package forms

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

var (
	_ ports.FormBinder[*article.Article]  = (*ArticleForm)(nil)
	_ ports.ShowBuilder[*article.Article] = (*ArticleForm)(nil)
)

// Editable article fields, in the order they are read.
var articleFields = []string{"title", "body", "status", "version"}

const msgInvalidVersion = "invalid version"

// ArticleForm maps the fields of an article form, submitted as
// {uniqid}[field], onto an article.
type ArticleForm struct{}

// NewArticleForm creates the article form.
func NewArticleForm() *ArticleForm { return &ArticleForm{} }

// FieldName returns the request parameter carrying field under uniqid.
func FieldName(uniqid, field string) string {
	if uniqid == "" {
		return field
	}
	return uniqid + "[" + field + "]"
}

// Bind implements ports.FormBinder. Reads leave the subject untouched.
// Submissions overwrite the fields that are present; new articles without
// an author are attributed to the acting user.
func (f *ArticleForm) Bind(_ context.Context, subject *article.Article, req *domain.Request) (*domain.FormSubmission[*article.Article], error) {
	if subject == nil {
		return nil, errors.New("bind article form: nil subject")
	}

	form := &domain.FormSubmission[*article.Article]{
		Subject: subject,
		Valid:   true,
		Values:  url.Values{},
	}
	if !req.IsSubmission() {
		return form, nil
	}
	form.Submitted = true
	form.Preview = domain.PreviewSignalFrom(req.Params)

	uniqid := req.Get(domain.ParamUniqID)
	for _, field := range articleFields {
		name := FieldName(uniqid, field)
		if !req.Has(name) {
			continue
		}
		value := req.Get(name)
		form.Values.Set(field, value)

		switch field {
		case "title":
			subject.Title = strings.TrimSpace(value)
		case "body":
			subject.Body = value
		case "status":
			subject.Status = article.Status(strings.TrimSpace(value))
		case "version":
			v, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || v < 0 {
				form.AddErrors(map[string]string{"version": msgInvalidVersion})
				continue
			}
			subject.Version = v
		}
	}

	if subject.IsNew() && subject.Author == "" {
		subject.Author = req.Actor.Username
	}
	return form, nil
}

// Validate implements ports.FormBinder.
func (f *ArticleForm) Validate(_ context.Context, subject *article.Article) map[string]string {
	var verr *domain.ValidationError
	if err := subject.Validate(); errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

// Elements implements ports.ShowBuilder.
func (f *ArticleForm) Elements(obj *article.Article) []domain.Field {
	return obj.Elements()
}
