// Package shared holds the principal model, the ownership policy and the
// sentinel errors used across resource modules.
package shared

// Role is a capability tag granted to a user account.
type Role string

// The role set is closed: every registered user holds USER, ADMIN is
// granted out of band only.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Principal describes the authenticated actor for the current request.
// It is built once by the auth middleware and never mutated afterwards.
type Principal struct {
	UserID int64
	Email  string
	Roles  []Role
}

// HasRole reports whether the principal holds the given role.
func (p Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// ParseRoles converts stored role names into Roles.
func ParseRoles(names []string) []Role {
	roles := make([]Role, len(names))
	for i, name := range names {
		roles[i] = Role(name)
	}
	return roles
}

// RoleNames converts roles back into their stored names.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return names
}
