package repository

import (
	"context"

	"github.com/mkravets/userhub/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
// Lookups return (nil, nil) when no record matches; absence is a normal
// outcome that only the HTTP boundary maps to a not-found error.
type UserRepository interface {
	// Create persists a new user. A unique-constraint conflict on email is
	// returned as apperr.ErrDuplicateEmail so that racing registrations are
	// arbitrated by the database.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List returns all users ordered newest-created-first.
	List(ctx context.Context) ([]*entity.User, error)
	// SetActive flips the is_active flag and returns the updated record,
	// or (nil, nil) if the id does not resolve. Idempotent.
	SetActive(ctx context.Context, id string, active bool) (*entity.User, error)
	// UpsertAdmin creates or overwrites the record keyed by email, forcing
	// role ADMIN and is_active true. Fills ID and timestamps on u.
	UpsertAdmin(ctx context.Context, u *entity.User) error
}
