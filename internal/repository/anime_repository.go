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

const animeColumns = "id, title, synopsis, trailer_url, poster_url, banner_url, studio, year, age_rating, genres, tags, total_episodes, created_at"

// animeRepository implements AnimeRepository interface
type animeRepository struct {
	db *database.Postgres
}

// NewAnimeRepository creates a new anime repository
func NewAnimeRepository(db *database.Postgres) AnimeRepository {
	return &animeRepository{db: db}
}

// Create inserts a catalog title. Only the seeder writes to this table.
func (r *animeRepository) Create(ctx context.Context, anime *domain.Anime) error {
	query := `
		INSERT INTO anime (id, title, synopsis, trailer_url, poster_url, banner_url, studio, year, age_rating, genres, tags, total_episodes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if anime.ID == "" {
		anime.ID = utils.NewID("anime")
	}
	if anime.CreatedAt.IsZero() {
		anime.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		anime.ID,
		anime.Title,
		anime.Synopsis,
		anime.TrailerURL,
		anime.PosterURL,
		anime.BannerURL,
		anime.Studio,
		anime.Year,
		anime.AgeRating,
		pq.Array(anime.Genres),
		pq.Array(anime.Tags),
		anime.TotalEpisodes,
		anime.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create anime: %w", err)
	}

	return nil
}

// List returns catalog titles matching the filter with skip/limit
// pagination, in store order.
func (r *animeRepository) List(ctx context.Context, filter AnimeFilter) ([]*domain.Anime, error) {
	query := `SELECT ` + animeColumns + ` FROM anime`
	args := []interface{}{}
	conds := []string{}

	if filter.Genre != "" {
		args = append(args, filter.Genre)
		conds = append(conds, fmt.Sprintf("$%d = ANY(genres)", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		conds = append(conds, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list anime: %w", err)
	}
	defer rows.Close()

	return scanAnimeRows(rows)
}

// ListNewest returns the most recently created titles
func (r *animeRepository) ListNewest(ctx context.Context, limit int) ([]*domain.Anime, error) {
	query := `SELECT ` + animeColumns + ` FROM anime ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list newest anime: %w", err)
	}
	defer rows.Close()

	return scanAnimeRows(rows)
}

// GetByID retrieves a catalog title by ID
func (r *animeRepository) GetByID(ctx context.Context, id string) (*domain.Anime, error) {
	query := `SELECT ` + animeColumns + ` FROM anime WHERE id = $1`

	anime, err := scanAnime(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("anime with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get anime by id: %w", err)
	}

	return anime, nil
}

// Recommendations returns titles sharing at least one of the given genres,
// excluding excludeID, in store order.
func (r *animeRepository) Recommendations(ctx context.Context, excludeID string, genres []string, limit int) ([]*domain.Anime, error) {
	query := `SELECT ` + animeColumns + ` FROM anime WHERE id <> $1 AND genres && $2 LIMIT $3`

	rows, err := r.db.DB.QueryContext(ctx, query, excludeID, pq.Array(genres), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}
	defer rows.Close()

	return scanAnimeRows(rows)
}

// Search returns a trimmed payload for titles matching the query
// case-insensitively.
func (r *animeRepository) Search(ctx context.Context, search string, limit int) ([]*domain.AnimeSummary, error) {
	query := `SELECT id, title, poster_url FROM anime WHERE title ILIKE '%' || $1 || '%' LIMIT $2`

	rows, err := r.db.DB.QueryContext(ctx, query, search, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search anime: %w", err)
	}
	defer rows.Close()

	results := []*domain.AnimeSummary{}
	for rows.Next() {
		summary := &domain.AnimeSummary{}
		if err := rows.Scan(&summary.ID, &summary.Title, &summary.PosterURL); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search results: %w", err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnime(row rowScanner) (*domain.Anime, error) {
	anime := &domain.Anime{}
	var trailerURL sql.NullString

	err := row.Scan(
		&anime.ID,
		&anime.Title,
		&anime.Synopsis,
		&trailerURL,
		&anime.PosterURL,
		&anime.BannerURL,
		&anime.Studio,
		&anime.Year,
		&anime.AgeRating,
		pq.Array(&anime.Genres),
		pq.Array(&anime.Tags),
		&anime.TotalEpisodes,
		&anime.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if trailerURL.Valid {
		anime.TrailerURL = &trailerURL.String
	}

	return anime, nil
}

func scanAnimeRows(rows *sql.Rows) ([]*domain.Anime, error) {
	list := []*domain.Anime{}
	for rows.Next() {
		anime, err := scanAnime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anime: %w", err)
		}
		list = append(list, anime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate anime: %w", err)
	}

	return list, nil
}
