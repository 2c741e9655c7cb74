package application

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/domain/entity"
)

// stubRepo is an in-memory repository.UserRepository for service tests.
type stubRepo struct {
	users map[string]*entity.User
	clock time.Time
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users: make(map[string]*entity.User),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *stubRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (r *stubRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperr.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.tick()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return cloneUser(r.users[id]), nil
}

func (r *stubRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubRepo) SetActive(_ context.Context, id string, active bool) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.IsActive = active
	u.UpdatedAt = r.tick()
	return cloneUser(u), nil
}

func (r *stubRepo) UpsertAdmin(_ context.Context, u *entity.User) error {
	u.Role = entity.RoleAdmin
	u.IsActive = true
	for _, existing := range r.users {
		if existing.Email == u.Email {
			u.ID = existing.ID
			u.CreatedAt = existing.CreatedAt
			u.UpdatedAt = r.tick()
			r.users[u.ID] = cloneUser(u)
			return nil
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.tick()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = cloneUser(u)
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
