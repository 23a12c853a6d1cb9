package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. There is no hierarchy between
// roles; every authorization check enumerates the roles it accepts.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleLandlord   Role = "LANDLORD"
	RoleTenant     Role = "TENANT"
)

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleLandlord, RoleTenant:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
