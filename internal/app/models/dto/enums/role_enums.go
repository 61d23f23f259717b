package enums

import "strings"

// RoleType defines the account kind chosen at registration
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAlumni  RoleType = "alumni"
)

// Roles lists the selectable roles in display order
func Roles() []RoleType {
	return []RoleType{RoleStudent, RoleAlumni}
}

// Label returns the display name of the role
func (r RoleType) Label() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleAlumni:
		return "Alumni"
	default:
		return string(r)
	}
}

// ParseRole normalizes a role from a form or a token claim. Unknown values
// are returned as-is, lowercased.
func ParseRole(s string) RoleType {
	return RoleType(strings.ToLower(strings.TrimSpace(s)))
}
