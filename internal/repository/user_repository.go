package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *database.Postgres
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.Postgres) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, picture, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if user.ID == "" {
		user.ID = utils.NewID("user")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Picture,
		nullString(user.PasswordHash),
		user.CreatedAt,
	)

	if err != nil {
		// Check for unique constraint violation (duplicate email)
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("user with email %s already exists: %w", user.Email, ErrDuplicateEmail)
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email, including the password hash for
// credential verification.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, picture, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	user := &domain.User{}
	var picture, passwordHash sql.NullString

	err := r.db.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&picture,
		&passwordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if picture.Valid {
		user.Picture = &picture.String
	}
	user.PasswordHash = passwordHash.String

	return user, nil
}

// GetByID retrieves a user by ID. The password hash is excluded: this is
// the lookup the session resolver uses, and the resolved identity must
// never carry the digest.
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, name, picture, created_at
		FROM users
		WHERE id = $1
	`

	user := &domain.User{}
	var picture sql.NullString

	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&picture,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	if picture.Valid {
		user.Picture = &picture.String
	}

	return user, nil
}

// UpsertByEmail inserts the user or refreshes name/picture when the email
// is already registered. A single statement keeps concurrent exchanges for
// the same email from racing.
func (r *userRepository) UpsertByEmail(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, name, picture, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, picture = EXCLUDED.picture
		RETURNING id, email, name, picture, created_at
	`

	if user.ID == "" {
		user.ID = utils.NewID("user")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	stored := &domain.User{}
	var picture sql.NullString

	err := r.db.DB.QueryRowContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Picture,
		nullString(user.PasswordHash),
		user.CreatedAt,
	).Scan(
		&stored.ID,
		&stored.Email,
		&stored.Name,
		&picture,
		&stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user by email: %w", err)
	}

	if picture.Valid {
		stored.Picture = &picture.String
	}

	return stored, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
