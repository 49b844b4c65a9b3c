package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that ArticleStore implements ports.ModelManager.
var _ ports.ModelManager[*article.Article] = (*ArticleStore)(nil)

const msgTitleTaken = "is already used by another article"

const articleColumns = `id, kind, title, body, status, author, version, created_at, updated_at`

// sortColumns maps datagrid sort keys to columns.
var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"status":     "status",
	"kind":       "kind",
	"author":     "author",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// ArticleStore persists articles. Every successful write records a revision.
type ArticleStore struct {
	store *Store
}

// Articles returns the article store.
func (s *Store) Articles() *ArticleStore {
	return &ArticleStore{store: s}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*article.Article, error) {
	var (
		a                    article.Article
		status               string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&a.ID, &a.Kind, &a.Title, &a.Body, &status, &a.Author, &a.Version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.Status = article.Status(status)
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return &a, nil
}

// NewInstance returns a blank draft of the given sub-class.
func (s *ArticleStore) NewInstance(subclass string) *article.Article {
	return article.New(subclass)
}

// Find loads one article by its URL identifier.
func (s *ArticleStore) Find(ctx context.Context, id string) (*article.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := article.ParseID(id)
	if err != nil {
		return nil, err
	}

	row := s.store.sqlDB.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, n)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ObjectNotFound(id)
		}
		return nil, &domain.PersistenceError{Op: "FindArticle", Err: err}
	}
	return a, nil
}

// Create inserts a new article at version 1.
func (s *ArticleStore) Create(ctx context.Context, a *article.Article) domain.SaveResult[*article.Article] {
	now := s.store.now().UTC()

	tx, err := s.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "CreateArticle", Err: err})
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO articles (kind, title, body, status, author, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 1, ?, ?)`,
		a.Kind, strings.TrimSpace(a.Title), a.Body, a.Status.String(), a.Author, toMillis(now), toMillis(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ValidationConflict[*article.Article](map[string]string{"title": msgTitleTaken})
		}
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "CreateArticle", Err: err})
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "CreateArticle", Err: err})
	}

	saved := *a
	saved.ID = id
	saved.Title = strings.TrimSpace(a.Title)
	saved.Version = 1
	saved.CreatedAt = fromMillis(toMillis(now))
	saved.UpdatedAt = saved.CreatedAt

	if err := recordRevision(ctx, tx, &saved, now); err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "CreateArticle", Err: err})
	}
	if err := tx.Commit(); err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "CreateArticle", Err: err})
	}

	*a = saved
	return domain.Saved(a)
}

// Update writes a when its version still matches the stored one, and bumps
// the version. A stale version yields a lock conflict.
func (s *ArticleStore) Update(ctx context.Context, a *article.Article) domain.SaveResult[*article.Article] {
	now := s.store.now().UTC()

	tx, err := s.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "UpdateArticle", Err: err})
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE articles
		    SET kind = ?, title = ?, body = ?, status = ?, author = ?, version = version + 1, updated_at = ?
		  WHERE id = ? AND version = ?`,
		a.Kind, strings.TrimSpace(a.Title), a.Body, a.Status.String(), a.Author, toMillis(now), a.ID, a.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ValidationConflict[*article.Article](map[string]string{"title": msgTitleTaken})
		}
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "UpdateArticle", Err: err})
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "UpdateArticle", Err: err})
	}
	if affected == 0 {
		return s.staleUpdate(ctx, tx, a)
	}

	saved := *a
	saved.Title = strings.TrimSpace(a.Title)
	saved.Version = a.Version + 1
	saved.UpdatedAt = fromMillis(toMillis(now))

	if err := recordRevision(ctx, tx, &saved, now); err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "UpdateArticle", Err: err})
	}
	if err := tx.Commit(); err != nil {
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "UpdateArticle", Err: err})
	}

	*a = saved
	return domain.Saved(a)
}

// staleUpdate tells a concurrent modification apart from a vanished row.
func (s *ArticleStore) staleUpdate(ctx context.Context, tx *sql.Tx, a *article.Article) domain.SaveResult[*article.Article] {
	var current int
	err := tx.QueryRowContext(ctx, `SELECT version FROM articles WHERE id = ?`, a.ID).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{
			Op:  "UpdateArticle",
			Err: domain.ObjectNotFound(a.ObjectID()),
		})
	case err != nil:
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: "UpdateArticle", Err: err})
	default:
		return domain.LockConflict[*article.Article](fmt.Errorf(
			"%w: article %d is at version %d, submitted version %d",
			domain.ErrConflict, a.ID, current, a.Version,
		))
	}
}

// Delete removes one article together with its ACL entries. Revisions are
// kept for the audit trail.
func (s *ArticleStore) Delete(ctx context.Context, a *article.Article) error {
	tx, err := s.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return &domain.PersistenceError{Op: "DeleteArticle", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, a.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "DeleteArticle", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ObjectNotFound(a.ObjectID())
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM object_acl WHERE class = ? AND object_id = ?`,
		article.Class, a.ObjectID()); err != nil {
		return &domain.PersistenceError{Op: "DeleteArticle", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "DeleteArticle", Err: err}
	}
	return nil
}

// BatchDelete removes every article matched by q, ignoring pagination.
func (s *ArticleStore) BatchDelete(ctx context.Context, q domain.Query) (int, error) {
	where, args := whereClause(q)

	tx, err := s.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "BatchDeleteArticles", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM object_acl WHERE class = ? AND object_id IN (SELECT CAST(id AS TEXT) FROM articles`+where+`)`,
		append([]any{article.Class}, args...)...); err != nil {
		return 0, &domain.PersistenceError{Op: "BatchDeleteArticles", Err: err}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM articles`+where, args...)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "BatchDeleteArticles", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &domain.PersistenceError{Op: "BatchDeleteArticles", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return 0, &domain.PersistenceError{Op: "BatchDeleteArticles", Err: err}
	}
	return int(n), nil
}

// Query returns one page of articles matching q and the total match count.
func (s *ArticleStore) Query(ctx context.Context, q domain.Query) ([]*article.Article, int, error) {
	where, args := whereClause(q)

	var total int
	if err := s.store.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`+where, args...).Scan(&total); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "CountArticles", Err: err}
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + where + orderClause(q)
	if q.PerPage > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, q.PerPage, q.Offset())
	}

	rows, err := s.store.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, &domain.PersistenceError{Op: "QueryArticles", Err: err}
	}
	defer rows.Close()

	var out []*article.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, &domain.PersistenceError{Op: "QueryArticles", Err: err}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "QueryArticles", Err: err}
	}
	return out, total, nil
}

// ObjectID returns the URL identifier of a.
func (s *ArticleStore) ObjectID(a *article.Article) string {
	return a.ObjectID()
}

// ToString returns the display name of a.
func (s *ArticleStore) ToString(a *article.Article) string {
	return a.String()
}

// whereClause translates filters and the identifier constraint. Unknown
// filters are ignored.
func whereClause(q domain.Query) (string, []any) {
	var (
		conds []string
		args  []any
	)

	for _, name := range slices.Sorted(maps.Keys(q.Filters)) {
		value := q.Filters[name]
		switch name {
		case "title", "body":
			conds = append(conds, name+` LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(value)+"%")
		case "status", "kind", "author":
			conds = append(conds, name+` = ?`)
			args = append(args, value)
		}
	}

	if q.Constrained() {
		ids := make([]any, 0, len(q.IDs))
		for _, id := range q.IDs {
			if n, err := strconv.ParseInt(id, 10, 64); err == nil {
				ids = append(ids, n)
			}
		}
		if len(ids) == 0 {
			conds = append(conds, `1 = 0`)
		} else {
			conds = append(conds, `id IN (?`+strings.Repeat(`, ?`, len(ids)-1)+`)`)
			args = append(args, ids...)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return ` WHERE ` + strings.Join(conds, ` AND `), args
}

func orderClause(q domain.Query) string {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "id"
	}
	order := domain.SortDesc
	if strings.EqualFold(q.SortOrder, domain.SortAsc) {
		order = domain.SortAsc
	}
	if col == "id" {
		return ` ORDER BY id ` + order
	}
	return ` ORDER BY ` + col + ` ` + order + `, id ` + order
}

func escapeLike(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(v)
}
