package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash; the hash never
// leaves the repository/service layer (handlers see sanitized projections).
type User struct {
	ID           string
	FullName     string
	BirthDate    time.Time
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
