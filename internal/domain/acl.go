package domain

import (
	"slices"
	"sort"
)

// Object permissions.
const (
	PermissionView     = "VIEW"
	PermissionEdit     = "EDIT"
	PermissionCreate   = "CREATE"
	PermissionDelete   = "DELETE"
	PermissionOperator = "OPERATOR"
	PermissionMaster   = "MASTER"
	PermissionOwner    = "OWNER"
)

// Permissions lists the grantable permissions in display order.
var Permissions = []string{
	PermissionView,
	PermissionEdit,
	PermissionCreate,
	PermissionDelete,
	PermissionOperator,
	PermissionMaster,
	PermissionOwner,
}

// ACL maps a principal (user name or ROLE_*) to its object permissions.
type ACL map[string][]string

// Principals returns the principals in sorted order.
func (a ACL) Principals() []string {
	out := make([]string, 0, len(a))
	for p := range a {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Grants reports whether principal holds perm, directly or through a
// stronger permission (OPERATOR, MASTER, OWNER imply everything below).
func (a ACL) Grants(principal, perm string) bool {
	held := a[principal]
	if slices.Contains(held, perm) {
		return true
	}
	rank := slices.Index(Permissions, perm)
	for _, h := range held {
		if r := slices.Index(Permissions, h); r >= slices.Index(Permissions, PermissionOperator) && r > rank {
			return true
		}
	}
	return false
}

// PermissionFor maps an admin action to the object permission it needs.
func PermissionFor(action string) string {
	switch action {
	case ActionShow, ActionHistory, ActionHistoryViewRevision, ActionHistoryCompareRevisions:
		return PermissionView
	case ActionEdit:
		return PermissionEdit
	case ActionCreate:
		return PermissionCreate
	case ActionDelete:
		return PermissionDelete
	case ActionACL:
		return PermissionOwner
	default:
		return PermissionOperator
	}
}
