// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAluno indicates a student volunteer.
	RoleAluno Role = "aluno"
	// RoleProfessor indicates a course instructor.
	RoleProfessor Role = "professor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAluno, RoleProfessor:
		return true
	default:
		return false
	}
}

// NormalizeRole maps the role spellings seen across the registration forms
// onto the two canonical values. The mapping is deterministic; unknown input
// comes back unchanged and invalid so callers can reject it.
func NormalizeRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aluno", "estudante", "student":
		return RoleAluno
	case "professor", "teacher":
		return RoleProfessor
	default:
		return Role(s)
	}
}
