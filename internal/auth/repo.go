package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// Repository defines persistence operations for the auth module: account
// lookup plus the refresh token ledger.
type Repository interface {
	CreateUser(ctx context.Context, user User) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id string) (*User, error)

	CreateRefreshToken(ctx context.Context, userID string, expiresAt time.Time) (RefreshTokenRecord, error)
	FindRefreshToken(ctx context.Context, id string) (*RefreshTokenRecord, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const uniqueViolation = "23505"

// CreateUser inserts a new account row.
func (r *PGRepository) CreateUser(ctx context.Context, user User) (User, error) {
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, shared.ErrDuplicate
		}
		return User{}, err
	}
	return user, nil
}

// FindUserByEmail fetches an account by email.
func (r *PGRepository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanUser(r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, role, created_at, updated_at
		 FROM users WHERE email = $1`, email))
}

// FindUserByID fetches an account by id.
func (r *PGRepository) FindUserByID(ctx context.Context, id string) (*User, error) {
	return r.scanUser(r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, role, created_at, updated_at
		 FROM users WHERE id = $1`, id))
}

func (r *PGRepository) scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateRefreshToken inserts a new ledger row in a single statement.
func (r *PGRepository) CreateRefreshToken(ctx context.Context, userID string, expiresAt time.Time) (RefreshTokenRecord, error) {
	record := RefreshTokenRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: expiresAt.UTC(),
		Revoked:   false,
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, issued_at, expires_at, revoked)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.UserID, record.IssuedAt, record.ExpiresAt, record.Revoked)
	if err != nil {
		return RefreshTokenRecord{}, err
	}
	return record, nil
}

// FindRefreshToken fetches a ledger row by id.
func (r *PGRepository) FindRefreshToken(ctx context.Context, id string) (*RefreshTokenRecord, error) {
	var rec RefreshTokenRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, issued_at, expires_at, revoked
		 FROM refresh_tokens WHERE id = $1`, id).
		Scan(&rec.ID, &rec.UserID, &rec.IssuedAt, &rec.ExpiresAt, &rec.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// RevokeRefreshToken flips the revoked flag in one atomic point update.
// Running it twice on the same id is safe: the transition is monotone and
// the second update matches the same row.
func (r *PGRepository) RevokeRefreshToken(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
