package domain

import "time"

// Anime is a title in the read-only media catalog. Catalog rows are seeded
// out-of-band and never mutated by the serving layer.
type Anime struct {
	ID            string    `json:"anime_id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Synopsis      string    `json:"synopsis" db:"synopsis"`
	TrailerURL    *string   `json:"trailer_url" db:"trailer_url"`
	PosterURL     string    `json:"poster_url" db:"poster_url"`
	BannerURL     string    `json:"banner_url" db:"banner_url"`
	Studio        string    `json:"studio" db:"studio"`
	Year          int       `json:"year" db:"year"`
	AgeRating     string    `json:"age_rating" db:"age_rating"`
	Genres        []string  `json:"genres" db:"genres"`
	Tags          []string  `json:"tags" db:"tags"`
	TotalEpisodes int       `json:"total_episodes" db:"total_episodes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AnimeSummary is the trimmed search payload.
type AnimeSummary struct {
	ID        string `json:"anime_id" db:"id"`
	Title     string `json:"title" db:"title"`
	PosterURL string `json:"poster_url" db:"poster_url"`
}

// Episode belongs to one anime, ordered by (season, episode) within it.
// Skip markers are optional second offsets for intro/recap skipping.
type Episode struct {
	ID              string    `json:"episode_id" db:"id"`
	AnimeID         string    `json:"anime_id" db:"anime_id"`
	SeasonNumber    int       `json:"season_number" db:"season_number"`
	EpisodeNumber   int       `json:"episode_number" db:"episode_number"`
	Title           string    `json:"title" db:"title"`
	ThumbnailURL    string    `json:"thumbnail_url" db:"thumbnail_url"`
	VideoURL        string    `json:"video_url" db:"video_url"`
	DurationSeconds int       `json:"duration_seconds" db:"duration_seconds"`
	SkipIntroStart  *int      `json:"skip_intro_start" db:"skip_intro_start"`
	SkipIntroEnd    *int      `json:"skip_intro_end" db:"skip_intro_end"`
	SkipRecapStart  *int      `json:"skip_recap_start" db:"skip_recap_start"`
	SkipRecapEnd    *int      `json:"skip_recap_end" db:"skip_recap_end"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
