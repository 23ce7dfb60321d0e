package domain

import (
	"fmt"
	"time"
)

// RoleName enumerates the fixed set of assignable roles.
type RoleName string

const (
	RoleClient RoleName = "ROLE_CLIENT"
	RoleAdmin  RoleName = "ROLE_ADMIN"
)

// Role is a named authority assignable to users.
type Role struct {
	ID   int64
	Name RoleName
}

// DefaultRole returns the canonical role granted when none are requested.
func DefaultRole() Role {
	return Role{Name: RoleClient}
}

// ParseRole validates a role name against the enumeration.
func ParseRole(name string) (Role, error) {
	switch RoleName(name) {
	case RoleClient, RoleAdmin:
		return Role{Name: RoleName(name)}, nil
	default:
		return Role{}, fmt.Errorf("unknown role %q", name)
	}
}

// NormalizeRoles guarantees a non-empty role set: a nil or empty list
// becomes the single default role, anything else is kept as-is.
func NormalizeRoles(roles []Role) []Role {
	if len(roles) == 0 {
		return []Role{DefaultRole()}
	}
	return roles
}

// User is the identity aggregate. Username is the unique sign-in identifier;
// the password hash is opaque to everything except the credential verifier.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleNames lists the user's role names in assignment order.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		names[i] = string(role.Name)
	}
	return names
}
