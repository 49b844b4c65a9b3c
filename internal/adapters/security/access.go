package security

import (
	"context"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that RoleAccess implements ports.AccessChecker.
var _ ports.AccessChecker = (*RoleAccess)(nil)

// RoleSuperAdmin is granted every action.
const RoleSuperAdmin = "ROLE_SUPER_ADMIN"

// RoleAccess grants actions from a role table. Object-level checks also
// consult the object ACL when an ACL manager is configured: a principal
// (the username or one of the roles) holding the matching permission is
// granted even when no role lists the action.
type RoleAccess struct {
	roles  map[string][]string
	class  string
	acl    ports.ACLManager
	logger *slog.Logger
}

// NewRoleAccess creates the checker. acl may be nil.
func NewRoleAccess(roles map[string][]string, class string, acl ports.ACLManager, logger *slog.Logger) *RoleAccess {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RoleAccess{roles: roles, class: class, acl: acl, logger: logger}
}

// IsGranted implements ports.AccessChecker.
func (a *RoleAccess) IsGranted(ctx context.Context, actor domain.Actor, action, objectID string) bool {
	for _, role := range actor.Roles {
		if role == RoleSuperAdmin {
			return true
		}
		if actions := a.roles[role]; slices.Contains(actions, action) || slices.Contains(actions, "*") {
			return true
		}
	}

	if objectID == "" || a.acl == nil {
		return false
	}
	acl, err := a.acl.ObjectACL(ctx, a.class, objectID)
	if err != nil {
		a.logger.WarnContext(ctx, "failed to load object acl",
			slog.String("class", a.class),
			slog.String("object_id", objectID),
			slog.Any("error", err),
		)
		return false
	}

	perm := domain.PermissionFor(action)
	if actor.Username != "" && acl.Grants(actor.Username, perm) {
		return true
	}
	for _, role := range actor.Roles {
		if acl.Grants(role, perm) {
			return true
		}
	}
	return false
}
