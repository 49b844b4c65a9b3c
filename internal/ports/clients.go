package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// ModelManager is the persistence collaborator for subjects of type T.
// Implemented by the sqlite store and the remote ACL client.
type ModelManager[T any] interface {
	// NewInstance returns a blank subject of the given sub-class ("" for the
	// default one).
	NewInstance(subclass string) T

	// Find loads a subject by its URL identifier.
	// Returns an error wrapping domain.ErrNotFound if it does not exist.
	Find(ctx context.Context, id string) (T, error)

	// Create persists a new subject and assigns its identity.
	Create(ctx context.Context, obj T) domain.SaveResult[T]

	// Update persists changes to an existing subject. A stale version yields
	// a LockConflict result.
	Update(ctx context.Context, obj T) domain.SaveResult[T]

	// Delete removes a subject.
	Delete(ctx context.Context, obj T) error

	// BatchDelete removes every subject matched by q and returns the count.
	BatchDelete(ctx context.Context, q domain.Query) (int, error)

	// Query returns one page of subjects matching q and the total count.
	Query(ctx context.Context, q domain.Query) ([]T, int, error)

	// ObjectID returns the URL identifier of obj ("" before creation).
	ObjectID(obj T) string

	// ToString returns the display name of obj.
	ToString(obj T) string
}

// FormBinder binds request parameters onto a subject and validates it.
type FormBinder[T any] interface {
	// Bind maps the request onto subject. Submitted is false for reads.
	Bind(ctx context.Context, subject T, req *domain.Request) (*domain.FormSubmission[T], error)

	// Validate returns per-field errors, or nil when the subject is valid.
	Validate(ctx context.Context, subject T) map[string]string
}

// ShowBuilder materializes read-only display elements of a subject.
type ShowBuilder[T any] interface {
	Elements(obj T) []domain.Field
}

// AuditReader reads historical snapshots of one class.
type AuditReader[T any] interface {
	// FindRevisions returns the revisions of an object, newest first.
	FindRevisions(ctx context.Context, class, id string) ([]domain.Revision[T], error)

	// Find returns one revision of an object.
	// Returns an error wrapping domain.ErrNotFound if it does not exist.
	Find(ctx context.Context, class, id, revision string) (domain.Revision[T], error)
}

// AuditManager resolves the audit reader registered for a class.
type AuditManager[T any] interface {
	Reader(class string) (AuditReader[T], bool)
}

// AccessChecker decides whether an actor may perform an admin action, on the
// resource as a whole (objectID == "") or on one object.
type AccessChecker interface {
	IsGranted(ctx context.Context, actor domain.Actor, action, objectID string) bool
}

// CsrfManager issues and verifies tokens bound to a session and intention.
type CsrfManager interface {
	Token(ctx context.Context, sessionID, intention string) (string, error)
	Valid(ctx context.Context, sessionID, intention, token string) bool
}

// Translator resolves message keys for a locale and translation domain.
type Translator interface {
	Trans(locale, key string, params map[string]string, translationDomain string) string
}

// SessionStore holds per-session feedback messages and attributes
// (list mode, persisted filters).
type SessionStore interface {
	AddFlash(ctx context.Context, sessionID string, flash domain.Flash) error

	// DrainFlashes returns and removes the pending flashes.
	DrainFlashes(ctx context.Context, sessionID string) ([]domain.Flash, error)

	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
}

// Exporter writes tabular rows in one of its supported formats.
type Exporter interface {
	Formats() []string
	ContentType(format string) string
	Export(ctx context.Context, format string, w io.Writer, header []string, rows [][]string) error
}

// ACLManager stores object ACLs.
type ACLManager interface {
	ObjectACL(ctx context.Context, class, id string) (domain.ACL, error)
	UpdateObjectACL(ctx context.Context, class, id string, acl domain.ACL) error
}

// TemplateRenderer renders a named page template.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data map[string]any) error
}
