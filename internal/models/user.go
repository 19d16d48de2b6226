package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the account role. Every token and every role-gated route
// dispatches on this type rather than on raw strings.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// ParseRole normalizes and validates a role supplied by a client.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(s)) {
	case RolePatient:
		return RolePatient, true
	case RoleDoctor:
		return RoleDoctor, true
	}
	return "", false
}

// User is an account record. Accounts are immutable after signup.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID    string    `gorm:"size:80;not null;uniqueIndex" json:"userId"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"size:10;not null" json:"role"`
	FullName  string    `gorm:"size:255;not null" json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the authenticated caller decoded from a verified token.
type Identity struct {
	UserID   string
	Role     Role
	FullName string
	Email    string
}
