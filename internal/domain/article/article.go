package article

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// Class is the class name the audit manager registers article readers under.
const Class = "article"

// Sub-classes selectable on create.
const (
	KindNews    = "news"
	KindFeature = "feature"
)

const maxTitleLength = 255

// Article is the demo subject managed by the admin.
type Article struct {
	ID        int64
	Kind      string
	Title     string
	Body      string
	Status    Status
	Author    string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a blank draft of the given sub-class.
func New(kind string) *Article {
	if kind == "" {
		kind = KindNews
	}
	return &Article{Kind: kind, Status: StatusDraft}
}

// IsNew reports whether the article has not been persisted yet.
func (a *Article) IsNew() bool {
	return a.ID == 0
}

// ObjectID returns the identifier as used in URLs, or "" before persistence.
func (a *Article) ObjectID() string {
	if a.IsNew() {
		return ""
	}
	return strconv.FormatInt(a.ID, 10)
}

// String returns the display name of the article.
func (a *Article) String() string {
	if strings.TrimSpace(a.Title) == "" {
		return "n/a"
	}
	return a.Title
}

// Validate checks business rules for the Article entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (a *Article) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(a.Title)
	switch {
	case title == "":
		fields["title"] = domain.MsgRequired
	case len(title) > maxTitleLength:
		fields["title"] = fmt.Sprintf("must be at most %d characters", maxTitleLength)
	}
	if strings.TrimSpace(a.Body) == "" {
		fields["body"] = domain.MsgRequired
	}
	if !a.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", a.Status)
	}
	if a.Kind != KindNews && a.Kind != KindFeature {
		fields["kind"] = fmt.Sprintf("invalid: %q", a.Kind)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Elements returns the read-only display fields of the article.
func (a *Article) Elements() []domain.Field {
	return []domain.Field{
		{Name: "id", Label: "ID", Value: a.ObjectID()},
		{Name: "kind", Label: "Kind", Value: a.Kind},
		{Name: "title", Label: "Title", Value: a.Title},
		{Name: "body", Label: "Body", Value: a.Body},
		{Name: "status", Label: "Status", Value: a.Status.String()},
		{Name: "author", Label: "Author", Value: a.Author},
		{Name: "version", Label: "Version", Value: strconv.Itoa(a.Version)},
	}
}

// ParseID converts a URL identifier into an article ID.
func ParseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ObjectNotFound(id)
	}
	return n, nil
}
