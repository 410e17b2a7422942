package domain

import "time"

// WatchHistory tracks progress for one (profile, anime) pair. At most one
// record exists per pair; writes are atomic upserts.
type WatchHistory struct {
	ID              string    `json:"history_id" db:"id"`
	ProfileID       string    `json:"profile_id" db:"profile_id"`
	AnimeID         string    `json:"anime_id" db:"anime_id"`
	EpisodeID       string    `json:"episode_id" db:"episode_id"`
	ProgressSeconds int       `json:"progress_seconds" db:"progress_seconds"`
	LastWatchedAt   time.Time `json:"last_watched_at" db:"last_watched_at"`
	Completed       bool      `json:"completed" db:"completed"`
}

// ContinueWatchingEntry is a watch-history row joined with its catalog
// documents for the continue-watching shelf.
type ContinueWatchingEntry struct {
	Anime           *Anime    `json:"anime"`
	Episode         *Episode  `json:"episode"`
	ProgressSeconds int       `json:"progress_seconds"`
	LastWatchedAt   time.Time `json:"last_watched_at"`
}

// MyListItem is an insert-once list membership; a duplicate add for the
// same (profile, anime) is rejected rather than upserted.
type MyListItem struct {
	ID        string    `json:"list_id" db:"id"`
	ProfileID string    `json:"profile_id" db:"profile_id"`
	AnimeID   string    `json:"anime_id" db:"anime_id"`
	AddedAt   time.Time `json:"added_at" db:"added_at"`
}

// Rating holds a profile's verdict for one anime, upserted by
// (profile, anime). Both fields are optional; a rating may carry only a
// thumb or only a score.
type Rating struct {
	ID        string    `json:"rating_id" db:"id"`
	ProfileID string    `json:"profile_id" db:"profile_id"`
	AnimeID   string    `json:"anime_id" db:"anime_id"`
	Liked     *bool     `json:"liked" db:"liked"`
	Score     *int      `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Review is append-only; a profile may review the same anime repeatedly.
// The profile name is denormalized onto the row at creation time.
type Review struct {
	ID          string    `json:"review_id" db:"id"`
	ProfileID   string    `json:"profile_id" db:"profile_id"`
	ProfileName string    `json:"profile_name" db:"profile_name"`
	AnimeID     string    `json:"anime_id" db:"anime_id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Spoiler     bool      `json:"spoiler" db:"spoiler"`
	Rating      int       `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
