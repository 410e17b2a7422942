package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

// reviewRepository implements ReviewRepository interface
type reviewRepository struct {
	db *database.Postgres
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *database.Postgres) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review. Reviews are append-only; there is no update or
// delete path.
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, profile_id, profile_name, anime_id, title, content, spoiler, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if review.ID == "" {
		review.ID = utils.NewID("review")
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		review.ID,
		review.ProfileID,
		review.ProfileName,
		review.AnimeID,
		review.Title,
		review.Content,
		review.Spoiler,
		review.Rating,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// ListByAnime returns a title's reviews, newest first
func (r *reviewRepository) ListByAnime(ctx context.Context, animeID string, limit int) ([]*domain.Review, error) {
	query := `
		SELECT id, profile_id, profile_name, anime_id, title, content, spoiler, rating, created_at
		FROM reviews
		WHERE anime_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.DB.QueryContext(ctx, query, animeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := &domain.Review{}
		err := rows.Scan(
			&review.ID,
			&review.ProfileID,
			&review.ProfileName,
			&review.AnimeID,
			&review.Title,
			&review.Content,
			&review.Spoiler,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}
