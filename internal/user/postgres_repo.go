package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (username, first_name, last_name, email, password_hash, is_staff)
	VALUES ($1, $2, $3, $4, $5, false)
	RETURNING id, is_staff, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, u.Username, u.FirstName, u.LastName, u.Email, u.Password).
		Scan(&u.ID, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
	SELECT id, username, first_name, last_name, email, password_hash, is_staff, created_at, updated_at
	FROM users
	WHERE username = $1
	LIMIT 1`

	return r.get(ctx, query, username)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (User, error) {
	const query = `
	SELECT id, username, first_name, last_name, email, password_hash, is_staff, created_at, updated_at
	FROM users
	WHERE id = $1
	LIMIT 1`

	return r.get(ctx, query, id)
}

func (r *PostgresRepo) get(ctx context.Context, query string, arg any) (User, error) {
	var u User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
		&u.Password, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
