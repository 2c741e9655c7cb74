package application

import (
	"context"
	"time"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/domain/entity"
	repo "github.com/mkravets/userhub/internal/domain/repository"
	"github.com/mkravets/userhub/pkg/helpers"
)

// AdminService owns the bootstrap path, the only way a user becomes ADMIN.
type AdminService struct {
	repo repo.UserRepository
}

func NewAdminService(r repo.UserRepository) *AdminService {
	return &AdminService{repo: r}
}

type AdminParams struct {
	Email     string
	Password  string
	FullName  string
	BirthDate time.Time
}

// UpsertAdmin creates or overwrites the record keyed by email, forcing
// role ADMIN and is_active true. Idempotent: safe to run repeatedly or
// concurrently. Reports whether a new record was created.
func (s *AdminService) UpsertAdmin(ctx context.Context, p AdminParams) (*User, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, false, apperr.Wrap(apperr.Internal, "user lookup failed", err)
	}

	hash, err := helpers.HashPassword(p.Password)
	if err != nil {
		return nil, false, apperr.Wrap(apperr.Internal, "password hashing failed", err)
	}

	u := &entity.User{
		FullName:     p.FullName,
		BirthDate:    p.BirthDate,
		Email:        p.Email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := s.repo.UpsertAdmin(ctx, u); err != nil {
		return nil, false, apperr.Wrap(apperr.Internal, "admin upsert failed", err)
	}
	return sanitize(u), existing == nil, nil
}
