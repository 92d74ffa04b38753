package domain

// Actor is the authenticated identity derived from a verified token. It is
// never persisted; every authorization decision is a function of the actor,
// the target user id, and (for deletes) the live admin count.
type Actor struct {
	ID    int64
	Email string
	Role  Role
}

// CanActOnProfile reports whether the actor may mutate the target profile.
// Admins may act on any profile, everyone else only on their own.
func CanActOnProfile(actor Actor, targetID int64) bool {
	return actor.Role.Can(ActionManageAnyProfile) || actor.ID == targetID
}

// CanChangeRole reports whether the actor may apply an update that includes
// the role field. Updates that leave the role untouched are always allowed.
func CanChangeRole(actor Actor, roleRequested bool) bool {
	return !roleRequested || actor.Role.Can(ActionChangeRole)
}

// CanDeleteSelfAsAdmin guards the last-admin rule: an admin deleting their
// own account is refused when no other admin would remain. The count is read
// before the delete with no transactional isolation, and demoting a role via
// update is deliberately unguarded; both match the upstream behaviour.
func CanDeleteSelfAsAdmin(actor Actor, targetID int64, adminCount int64) bool {
	if actor.Role != RoleAdmin || actor.ID != targetID {
		return true
	}
	return adminCount > 1
}
