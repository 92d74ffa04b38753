package domain

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Action names a capability a role may hold. Authorization rules check
// capabilities rather than comparing role strings at every call site.
type Action string

const (
	// ActionManageAnyProfile permits updating or deleting accounts other
	// than the actor's own.
	ActionManageAnyProfile Action = "manage_any_profile"
	// ActionChangeRole permits changing the role field of an account.
	ActionChangeRole Action = "change_role"
)

var roleGrants = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionManageAnyProfile: true,
		ActionChangeRole:       true,
	},
	RoleUser: {},
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleGrants[r]
	return ok
}

// Can reports whether the role holds the given capability.
func (r Role) Can(a Action) bool {
	return roleGrants[r][a]
}
