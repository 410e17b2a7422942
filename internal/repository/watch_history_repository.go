package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

// watchHistoryRepository implements WatchHistoryRepository interface
type watchHistoryRepository struct {
	db *database.Postgres
}

// NewWatchHistoryRepository creates a new watch history repository
func NewWatchHistoryRepository(db *database.Postgres) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// Upsert creates or replaces the single record for (profile, anime) in one
// statement, so concurrent updates cannot produce duplicate rows.
func (r *watchHistoryRepository) Upsert(ctx context.Context, record *domain.WatchHistory) error {
	query := `
		INSERT INTO watch_history (id, profile_id, anime_id, episode_id, progress_seconds, last_watched_at, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (profile_id, anime_id) DO UPDATE SET
			episode_id = EXCLUDED.episode_id,
			progress_seconds = EXCLUDED.progress_seconds,
			last_watched_at = EXCLUDED.last_watched_at,
			completed = EXCLUDED.completed
	`

	if record.ID == "" {
		record.ID = utils.NewID("history")
	}
	if record.LastWatchedAt.IsZero() {
		record.LastWatchedAt = time.Now().UTC()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		record.ID,
		record.ProfileID,
		record.AnimeID,
		record.EpisodeID,
		record.ProgressSeconds,
		record.LastWatchedAt,
		record.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert watch history: %w", err)
	}

	return nil
}

// ContinueWatching returns incomplete history entries joined with their
// catalog documents, most recently watched first. Entries whose anime no
// longer exists are dropped by the join.
func (r *watchHistoryRepository) ContinueWatching(ctx context.Context, profileID string, limit int) ([]*domain.ContinueWatchingEntry, error) {
	query := `
		SELECT h.progress_seconds, h.last_watched_at,
			a.id, a.title, a.synopsis, a.trailer_url, a.poster_url, a.banner_url, a.studio, a.year, a.age_rating, a.genres, a.tags, a.total_episodes, a.created_at,
			e.id, e.anime_id, e.season_number, e.episode_number, e.title, e.thumbnail_url, e.video_url, e.duration_seconds, e.skip_intro_start, e.skip_intro_end, e.skip_recap_start, e.skip_recap_end, e.created_at
		FROM watch_history h
		JOIN anime a ON a.id = h.anime_id
		JOIN episodes e ON e.id = h.episode_id
		WHERE h.profile_id = $1 AND h.completed = FALSE
		ORDER BY h.last_watched_at DESC
		LIMIT $2
	`

	rows, err := r.db.DB.QueryContext(ctx, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list continue watching: %w", err)
	}
	defer rows.Close()

	entries := []*domain.ContinueWatchingEntry{}
	for rows.Next() {
		entry, err := scanContinueWatchingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan continue watching row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate continue watching: %w", err)
	}

	return entries, nil
}

func scanContinueWatchingRow(row rowScanner) (*domain.ContinueWatchingEntry, error) {
	entry := &domain.ContinueWatchingEntry{}
	anime := &domain.Anime{}
	episode := &domain.Episode{}
	var trailerURL sql.NullString
	var introStart, introEnd, recapStart, recapEnd sql.NullInt64

	err := row.Scan(
		&entry.ProgressSeconds,
		&entry.LastWatchedAt,
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

	if trailerURL.Valid {
		anime.TrailerURL = &trailerURL.String
	}
	episode.SkipIntroStart = nullableInt(introStart)
	episode.SkipIntroEnd = nullableInt(introEnd)
	episode.SkipRecapStart = nullableInt(recapStart)
	episode.SkipRecapEnd = nullableInt(recapEnd)

	entry.Anime = anime
	entry.Episode = episode
	return entry, nil
}
