package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/domain/entity"
	repo "github.com/mkravets/userhub/internal/domain/repository"
	"github.com/mkravets/userhub/pkg/helpers"
)

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	repo   repo.UserRepository
	logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{repo: r, logger: logger}
}

type RegisterInput struct {
	FullName  string
	BirthDate time.Time
	Email     string
	Password  string
}

// Register creates a new USER account. Duplicate emails fail up front on
// lookup, or on the unique constraint when two registrations race.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*User, error) {
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user lookup failed", err)
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "password hashing failed", err)
	}

	u := &entity.User{
		FullName:     in.FullName,
		BirthDate:    in.BirthDate,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if apperr.From(err).Kind == apperr.DuplicateEmail {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.Internal, "user creation failed", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	return sanitize(u), nil
}

// Login verifies credentials. Unknown email and wrong password yield the
// identical error; a disabled account is reported distinctly because the
// caller already supplied the email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user lookup failed", err)
	}
	if u == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, apperr.ErrAccountDisabled
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return sanitize(u), nil
}

// GetByID returns (nil, nil) when the id does not resolve; the HTTP
// boundary decides whether that is a 404.
func (s *AuthService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user lookup failed", err)
	}
	return sanitize(u), nil
}
