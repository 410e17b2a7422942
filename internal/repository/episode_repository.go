package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

const episodeColumns = "id, anime_id, season_number, episode_number, title, thumbnail_url, video_url, duration_seconds, skip_intro_start, skip_intro_end, skip_recap_start, skip_recap_end, created_at"

// episodeRepository implements EpisodeRepository interface
type episodeRepository struct {
	db *database.Postgres
}

// NewEpisodeRepository creates a new episode repository
func NewEpisodeRepository(db *database.Postgres) EpisodeRepository {
	return &episodeRepository{db: db}
}

// Create inserts an episode. Only the seeder writes to this table.
func (r *episodeRepository) Create(ctx context.Context, episode *domain.Episode) error {
	query := `
		INSERT INTO episodes (id, anime_id, season_number, episode_number, title, thumbnail_url, video_url, duration_seconds, skip_intro_start, skip_intro_end, skip_recap_start, skip_recap_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if episode.ID == "" {
		episode.ID = utils.NewID("episode")
	}
	if episode.CreatedAt.IsZero() {
		episode.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		episode.ID,
		episode.AnimeID,
		episode.SeasonNumber,
		episode.EpisodeNumber,
		episode.Title,
		episode.ThumbnailURL,
		episode.VideoURL,
		episode.DurationSeconds,
		episode.SkipIntroStart,
		episode.SkipIntroEnd,
		episode.SkipRecapStart,
		episode.SkipRecapEnd,
		episode.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create episode: %w", err)
	}

	return nil
}

// ListByAnime returns a title's episodes ordered by episode number
// ascending.
func (r *episodeRepository) ListByAnime(ctx context.Context, animeID string) ([]*domain.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE anime_id = $1 ORDER BY episode_number ASC`

	rows, err := r.db.DB.QueryContext(ctx, query, animeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	episodes := []*domain.Episode{}
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		episodes = append(episodes, episode)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate episodes: %w", err)
	}

	return episodes, nil
}

func scanEpisode(row rowScanner) (*domain.Episode, error) {
	episode := &domain.Episode{}
	var introStart, introEnd, recapStart, recapEnd sql.NullInt64

	err := row.Scan(
		&episode.ID,
		&episode.AnimeID,
		&episode.SeasonNumber,
		&episode.EpisodeNumber,
		&episode.Title,
		&episode.ThumbnailURL,
		&episode.VideoURL,
		&episode.DurationSeconds,
		&introStart,
		&introEnd,
		&recapStart,
		&recapEnd,
		&episode.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	episode.SkipIntroStart = nullableInt(introStart)
	episode.SkipIntroEnd = nullableInt(introEnd)
	episode.SkipRecapStart = nullableInt(recapStart)
	episode.SkipRecapEnd = nullableInt(recapEnd)

	return episode, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
