// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role an identity can have in the system.
type Role string

const (
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
	// RoleOperator indicates an operator profile.
	RoleOperator Role = "operator"
	// RoleFieldOperator indicates a field operator profile.
	RoleFieldOperator Role = "field_operator"
	// RoleServiceProvider indicates a service provider profile.
	RoleServiceProvider Role = "service_provider"
	// RoleStore indicates a store profile.
	RoleStore Role = "store"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleFieldOperator, RoleServiceProvider, RoleStore:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// UserRole is a role assignment for an identity.
type UserRole struct {
	UserID     uuid.UUID `json:"user_id"`
	Role       Role      `json:"role"`
	AssignedBy uuid.UUID `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}
