package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db *database.Postgres
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.Postgres) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new profile in the database
func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, name, avatar, is_kid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if profile.ID == "" {
		profile.ID = utils.NewID("profile")
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Name,
		profile.Avatar,
		profile.IsKid,
		profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, name, avatar, is_kid, created_at
		FROM profiles
		WHERE id = $1
	`

	profile := &domain.Profile{}

	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Avatar,
		&profile.IsKid,
		&profile.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return profile, nil
}

// ListByUser retrieves all profiles owned by a user
func (r *profileRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Profile, error) {
	query := `
		SELECT id, user_id, name, avatar, is_kid, created_at
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		profile := &domain.Profile{}
		err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.Name,
			&profile.Avatar,
			&profile.IsKid,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}

// CountByUser counts the profiles owned by a user
func (r *profileRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM profiles WHERE user_id = $1`

	var count int
	if err := r.db.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

// Delete removes a profile only when it belongs to userID. A missing row
// and an ownership mismatch are indistinguishable to the caller.
func (r *profileRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM profiles WHERE id = $1 AND user_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("profile with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
