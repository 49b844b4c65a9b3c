package sqlite

import (
	"context"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that ACLStore implements ports.ACLManager.
var _ ports.ACLManager = (*ACLStore)(nil)

// ACLStore persists object ACLs, one row per granted permission.
type ACLStore struct {
	store *Store
}

// ACLs returns the ACL store.
func (s *Store) ACLs() *ACLStore {
	return &ACLStore{store: s}
}

// ObjectACL returns the ACL of one object. Objects without entries get an
// empty ACL.
func (a *ACLStore) ObjectACL(ctx context.Context, class, id string) (domain.ACL, error) {
	rows, err := a.store.sqlDB.QueryContext(ctx,
		`SELECT principal, permission FROM object_acl
		  WHERE class = ? AND object_id = ? ORDER BY principal, permission`,
		class, id,
	)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "ObjectACL", Err: err}
	}
	defer rows.Close()

	acl := domain.ACL{}
	for rows.Next() {
		var principal, permission string
		if err := rows.Scan(&principal, &permission); err != nil {
			return nil, &domain.PersistenceError{Op: "ObjectACL", Err: err}
		}
		acl[principal] = append(acl[principal], permission)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "ObjectACL", Err: err}
	}
	return acl, nil
}

// UpdateObjectACL replaces the ACL of one object.
func (a *ACLStore) UpdateObjectACL(ctx context.Context, class, id string, acl domain.ACL) error {
	tx, err := a.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return &domain.PersistenceError{Op: "UpdateObjectACL", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM object_acl WHERE class = ? AND object_id = ?`, class, id); err != nil {
		return &domain.PersistenceError{Op: "UpdateObjectACL", Err: err}
	}
	for _, principal := range acl.Principals() {
		for _, perm := range acl[principal] {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO object_acl (class, object_id, principal, permission) VALUES (?, ?, ?, ?)`,
				class, id, principal, perm,
			); err != nil {
				return &domain.PersistenceError{Op: "UpdateObjectACL", Err: err}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "UpdateObjectACL", Err: err}
	}
	return nil
}
