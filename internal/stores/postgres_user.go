package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/password"
)

const pgUniqueViolation = "23505"

// PostgresUserStore persists identities in a users table keyed by a unique
// email constraint.
type PostgresUserStore struct {
	pool   *pgxpool.Pool
	hasher *password.Hasher
}

// NewPostgresUserStore returns a store backed by pool, hashing with hasher.
func NewPostgresUserStore(pool *pgxpool.Pool, hasher *password.Hasher) *PostgresUserStore {
	return &PostgresUserStore{pool: pool, hasher: hasher}
}

// Add hashes the password and inserts the identity. A unique-constraint
// violation maps to ErrUserAlreadyExists.
func (s *PostgresUserStore) Add(ctx context.Context, email domain.Email, pw domain.Password, requires2FA bool) error {
	hash, err := s.hasher.Hash(ctx, string(pw))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpected, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (email, password_hash, requires_2fa) VALUES ($1, $2, $3)`,
		email.String(), hash, requires2FA,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: insert user: %v", domain.ErrUnexpected, err)
	}
	return nil
}

// Get returns an owned copy of the stored identity.
func (s *PostgresUserStore) Get(ctx context.Context, email domain.Email) (domain.User, error) {
	var user domain.User
	err := s.pool.QueryRow(ctx,
		`SELECT email, password_hash, requires_2fa FROM users WHERE email = $1`,
		email.String(),
	).Scan(&user.Email, &user.PasswordHash, &user.Requires2FA)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("%w: select user: %v", domain.ErrUnexpected, err)
	}
	return user, nil
}

// Validate verifies pw against the stored hash.
func (s *PostgresUserStore) Validate(ctx context.Context, email domain.Email, pw domain.Password) error {
	var hash string
	err := s.pool.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE email = $1`,
		email.String(),
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%w: select user: %v", domain.ErrUnexpected, err)
	}

	ok, err := s.hasher.Verify(ctx, string(pw), hash)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpected, err)
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}
	return nil
}

var _ domain.UserStore = (*PostgresUserStore)(nil)
