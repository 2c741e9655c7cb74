// Package application orchestrates the auth and user-management use cases
// over the user repository. Everything it returns is a sanitized
// projection: the password hash never crosses this boundary.
package application

import (
	"time"

	"github.com/mkravets/userhub/internal/domain/entity"
	"github.com/mkravets/userhub/pkg/validation"
)

// User is the sanitized projection served to callers.
type User struct {
	ID        string      `json:"id"`
	FullName  string      `json:"fullName"`
	BirthDate string      `json:"birthDate"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func sanitize(u *entity.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		FullName:  u.FullName,
		BirthDate: u.BirthDate.Format(validation.BirthDateLayout),
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func sanitizeAll(users []*entity.User) []*User {
	out := make([]*User, 0, len(users))
	for _, u := range users {
		out = append(out, sanitize(u))
	}
	return out
}
