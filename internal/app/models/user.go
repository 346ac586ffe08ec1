package models

import (
	"time"
)

// Role is the access tier of a user account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleStudent Role = "student"
)

// IsValid reports whether the role is one of the known tiers.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStudent:
		return true
	}
	return false
}

// Gender values stored for a user profile.
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

// IsValidGender reports whether the value is one of the two stored genders.
func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// User defines the user model based on the 'users' table
type User struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"fullname" db:"name"`
	Username          string    `json:"username" db:"username"`
	Email             string    `json:"email" db:"email"`
	Password          string    `json:"-" db:"password"` // hashed or legacy value, never serialized
	Phone             *string   `json:"phone,omitempty" db:"phone"`
	Gender            *string   `json:"gender,omitempty" db:"gender"`
	Role              Role      `json:"role" db:"role"`
	Avatar            *string   `json:"avatar,omitempty" db:"avatar"`
	VerificationToken *string   `json:"-" db:"verification_token"` // nil once the email is verified
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
