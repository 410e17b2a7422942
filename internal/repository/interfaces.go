package repository

import (
	"context"

	"github.com/WesleyJeean/Animeflix/internal/domain"
)

// UserRepository defines methods for account operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// UpsertByEmail inserts the user or, when the email already exists,
	// refreshes name and picture. Returns the stored row either way.
	UpsertByEmail(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionRepository defines methods for session operations
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// ProfileRepository defines methods for profile operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Profile, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	// Delete removes the profile only when it belongs to userID.
	Delete(ctx context.Context, id, userID string) error
}

// AnimeFilter narrows catalog listing. Zero values mean "no filter".
type AnimeFilter struct {
	Genre  string
	Tag    string
	Search string
	Skip   int
	Limit  int
}

// AnimeRepository defines read access to the anime catalog plus the seed
// path used by cmd/seed.
type AnimeRepository interface {
	Create(ctx context.Context, anime *domain.Anime) error
	List(ctx context.Context, filter AnimeFilter) ([]*domain.Anime, error)
	ListNewest(ctx context.Context, limit int) ([]*domain.Anime, error)
	GetByID(ctx context.Context, id string) (*domain.Anime, error)
	// Recommendations returns titles sharing at least one of the given
	// genres, excluding excludeID, in store order.
	Recommendations(ctx context.Context, excludeID string, genres []string, limit int) ([]*domain.Anime, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.AnimeSummary, error)
}

// EpisodeRepository defines read access to episodes plus the seed path.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *domain.Episode) error
	ListByAnime(ctx context.Context, animeID string) ([]*domain.Episode, error)
}

// WatchHistoryRepository defines watch-progress operations
type WatchHistoryRepository interface {
	// Upsert atomically creates or replaces the single record for
	// (profile, anime).
	Upsert(ctx context.Context, record *domain.WatchHistory) error
	ContinueWatching(ctx context.Context, profileID string, limit int) ([]*domain.ContinueWatchingEntry, error)
}

// MyListRepository defines my-list operations
type MyListRepository interface {
	Add(ctx context.Context, item *domain.MyListItem) error
	ListAnime(ctx context.Context, profileID string) ([]*domain.Anime, error)
	Remove(ctx context.Context, profileID, animeID string) error
}

// RatingRepository defines rating operations
type RatingRepository interface {
	// Upsert atomically creates or replaces the single rating for
	// (profile, anime).
	Upsert(ctx context.Context, rating *domain.Rating) error
	Get(ctx context.Context, profileID, animeID string) (*domain.Rating, error)
}

// ReviewRepository defines review operations
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByAnime(ctx context.Context, animeID string, limit int) ([]*domain.Review, error)
}
