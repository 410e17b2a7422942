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

// ratingRepository implements RatingRepository interface
type ratingRepository struct {
	db *database.Postgres
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *database.Postgres) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert creates or replaces the single rating for (profile, anime) in one
// statement, so concurrent updates cannot produce duplicate rows.
func (r *ratingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (id, profile_id, anime_id, liked, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id, anime_id) DO UPDATE SET
			liked = EXCLUDED.liked,
			score = EXCLUDED.score
	`

	if rating.ID == "" {
		rating.ID = utils.NewID("rating")
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		rating.ID,
		rating.ProfileID,
		rating.AnimeID,
		rating.Liked,
		rating.Score,
		rating.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// Get retrieves the rating for (profile, anime)
func (r *ratingRepository) Get(ctx context.Context, profileID, animeID string) (*domain.Rating, error) {
	query := `
		SELECT id, profile_id, anime_id, liked, score, created_at
		FROM ratings
		WHERE profile_id = $1 AND anime_id = $2
	`

	rating := &domain.Rating{}
	var liked sql.NullBool
	var score sql.NullInt64

	err := r.db.DB.QueryRowContext(ctx, query, profileID, animeID).Scan(
		&rating.ID,
		&rating.ProfileID,
		&rating.AnimeID,
		&liked,
		&score,
		&rating.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rating not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	if liked.Valid {
		rating.Liked = &liked.Bool
	}
	rating.Score = nullableInt(score)

	return rating, nil
}
