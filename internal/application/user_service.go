package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/internal/apperr"
	repo "github.com/mkravets/userhub/internal/domain/repository"
)

// UserService covers the admin-facing listing and block/unblock
// transitions.
type UserService struct {
	repo   repo.UserRepository
	logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{repo: r, logger: logger}
}

// List returns all users, newest-created-first.
func (s *UserService) List(ctx context.Context) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user listing failed", err)
	}
	return sanitizeAll(users), nil
}

// GetByID returns (nil, nil) when the id does not resolve.
func (s *UserService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user lookup failed", err)
	}
	return sanitize(u), nil
}

// SetActive flips the is_active flag. Setting the current value is a no-op
// success; an unknown id is a NotFound failure.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*User, error) {
	u, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user update failed", err)
	}
	if u == nil {
		return nil, apperr.ErrUserNotFound
	}
	s.logger.WithFields(logrus.Fields{"user_id": id, "is_active": active}).Info("user active state set")
	return sanitize(u), nil
}
