package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

var (
	_ ports.AuditManager[*article.Article] = (*AuditStore)(nil)
	_ ports.AuditReader[*article.Article]  = (*articleRevisions)(nil)
)

// articleSnapshot is the stored JSON form of an article revision.
type articleSnapshot struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	Author    string `json:"author"`
	Version   int    `json:"version"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func snapshotOf(a *article.Article) articleSnapshot {
	return articleSnapshot{
		ID:        a.ID,
		Kind:      a.Kind,
		Title:     a.Title,
		Body:      a.Body,
		Status:    a.Status.String(),
		Author:    a.Author,
		Version:   a.Version,
		CreatedAt: toMillis(a.CreatedAt),
		UpdatedAt: toMillis(a.UpdatedAt),
	}
}

func (s articleSnapshot) article() *article.Article {
	return &article.Article{
		ID:        s.ID,
		Kind:      s.Kind,
		Title:     s.Title,
		Body:      s.Body,
		Status:    article.Status(s.Status),
		Author:    s.Author,
		Version:   s.Version,
		CreatedAt: fromMillis(s.CreatedAt),
		UpdatedAt: fromMillis(s.UpdatedAt),
	}
}

// recordRevision appends a snapshot of a inside the write transaction.
func recordRevision(ctx context.Context, tx *sql.Tx, a *article.Article, at time.Time) error {
	payload, err := json.Marshal(snapshotOf(a))
	if err != nil {
		return fmt.Errorf("encode revision: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO revisions (class, object_id, snapshot, author, created_at) VALUES (?, ?, ?, ?, ?)`,
		article.Class, a.ObjectID(), string(payload), a.Author, toMillis(at),
	); err != nil {
		return fmt.Errorf("insert revision: %w", err)
	}
	return nil
}

// AuditStore resolves the revision readers backed by the revisions table.
type AuditStore struct {
	store *Store
}

// Audit returns the audit manager.
func (s *Store) Audit() *AuditStore {
	return &AuditStore{store: s}
}

// Reader returns the reader registered for class. Only articles are audited.
func (a *AuditStore) Reader(class string) (ports.AuditReader[*article.Article], bool) {
	if class != article.Class {
		return nil, false
	}
	return &articleRevisions{store: a.store}, true
}

type articleRevisions struct {
	store *Store
}

// FindRevisions returns the revisions of an article, newest first.
func (r *articleRevisions) FindRevisions(ctx context.Context, class, id string) ([]domain.Revision[*article.Article], error) {
	rows, err := r.store.sqlDB.QueryContext(ctx,
		`SELECT id, object_id, snapshot, author, created_at FROM revisions
		  WHERE class = ? AND object_id = ? ORDER BY id DESC`,
		class, id,
	)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "FindRevisions", Err: err}
	}
	defer rows.Close()

	var out []domain.Revision[*article.Article]
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "FindRevisions", Err: err}
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "FindRevisions", Err: err}
	}
	return out, nil
}

// Find returns one revision of an article.
func (r *articleRevisions) Find(ctx context.Context, class, id, revision string) (domain.Revision[*article.Article], error) {
	revID, err := strconv.ParseInt(revision, 10, 64)
	if err != nil {
		return domain.Revision[*article.Article]{}, domain.RevisionNotFound(id, revision, class)
	}

	row := r.store.sqlDB.QueryRowContext(ctx,
		`SELECT id, object_id, snapshot, author, created_at FROM revisions
		  WHERE class = ? AND object_id = ? AND id = ?`,
		class, id, revID,
	)
	rev, err := scanRevision(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Revision[*article.Article]{}, domain.RevisionNotFound(id, revision, class)
		}
		return domain.Revision[*article.Article]{}, &domain.PersistenceError{Op: "FindRevision", Err: err}
	}
	return rev, nil
}

func scanRevision(row rowScanner) (domain.Revision[*article.Article], error) {
	var (
		revID     int64
		objectID  string
		payload   string
		author    string
		createdAt int64
	)
	if err := row.Scan(&revID, &objectID, &payload, &author, &createdAt); err != nil {
		return domain.Revision[*article.Article]{}, err
	}

	var snap articleSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return domain.Revision[*article.Article]{}, fmt.Errorf("decode revision %d: %w", revID, err)
	}

	return domain.Revision[*article.Article]{
		ObjectID:  objectID,
		ID:        strconv.FormatInt(revID, 10),
		Snapshot:  snap.article(),
		CreatedAt: fromMillis(createdAt),
		Author:    author,
	}, nil
}
