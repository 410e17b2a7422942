package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

// myListRepository implements MyListRepository interface
type myListRepository struct {
	db *database.Postgres
}

// NewMyListRepository creates a new my-list repository
func NewMyListRepository(db *database.Postgres) MyListRepository {
	return &myListRepository{db: db}
}

// Add inserts a list entry. The unique key on (profile_id, anime_id) makes
// a duplicate add fail instead of upserting.
func (r *myListRepository) Add(ctx context.Context, item *domain.MyListItem) error {
	query := `
		INSERT INTO my_list (id, profile_id, anime_id, added_at)
		VALUES ($1, $2, $3, $4)
	`

	if item.ID == "" {
		item.ID = utils.NewID("list")
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		item.ID,
		item.ProfileID,
		item.AnimeID,
		item.AddedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("anime %s already in list for profile %s: %w", item.AnimeID, item.ProfileID, ErrDuplicateListEntry)
			}
		}
		return fmt.Errorf("failed to add list entry: %w", err)
	}

	return nil
}

// ListAnime returns the anime documents on a profile's list, most recently
// added first.
func (r *myListRepository) ListAnime(ctx context.Context, profileID string) ([]*domain.Anime, error) {
	query := `
		SELECT a.id, a.title, a.synopsis, a.trailer_url, a.poster_url, a.banner_url, a.studio, a.year, a.age_rating, a.genres, a.tags, a.total_episodes, a.created_at
		FROM my_list l
		JOIN anime a ON a.id = l.anime_id
		WHERE l.profile_id = $1
		ORDER BY l.added_at DESC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list my-list anime: %w", err)
	}
	defer rows.Close()

	return scanAnimeRows(rows)
}

// Remove deletes a list entry
func (r *myListRepository) Remove(ctx context.Context, profileID, animeID string) error {
	query := `DELETE FROM my_list WHERE profile_id = $1 AND anime_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, profileID, animeID)
	if err != nil {
		return fmt.Errorf("failed to remove list entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("anime %s not in list for profile %s: %w", animeID, profileID, ErrNotFound)
	}

	return nil
}
