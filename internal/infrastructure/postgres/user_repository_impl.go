package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/domain/entity"
	"github.com/mkravets/userhub/internal/domain/repository"
)

const userColumns = `id, full_name, birth_date, email, password_hash, role, is_active, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.FullName, &u.BirthDate, &u.Email, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (full_name, birth_date, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.FullName, u.BirthDate, u.Email, u.PasswordHash, u.Role, u.IsActive)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		// The unique constraint on email is the arbiter for racing
		// registrations: the loser observes the violation here.
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.FullName, &u.BirthDate, &u.Email, &u.PasswordHash,
			&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, active)
	return scanUser(row)
}

func (r *UserRepository) UpsertAdmin(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (full_name, birth_date, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			birth_date = EXCLUDED.birth_date,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			is_active = TRUE,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, u.FullName, u.BirthDate, u.Email, u.PasswordHash, entity.RoleAdmin)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

var _ repository.UserRepository = (*UserRepository)(nil)
