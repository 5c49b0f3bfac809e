// Package models defines the scheduler's persisted entities.
package models

// Role is the closed set of account kinds a session can be logged in as.
type Role int

const (
	RoleNone Role = iota
	RolePatient
	RoleCaregiver
)

func (r Role) String() string {
	switch r {
	case RolePatient:
		return "patient"
	case RoleCaregiver:
		return "caregiver"
	default:
		return "none"
	}
}

// Account is a patient or caregiver. Usernames are unique within a role;
// the same string may name one account of each role.
type Account struct {
	Role     Role
	Username string
	Salt     []byte
	Hash     []byte
}
