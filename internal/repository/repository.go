package repository

import (
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Profile      ProfileRepository
	Anime        AnimeRepository
	Episode      EpisodeRepository
	WatchHistory WatchHistoryRepository
	MyList       MyListRepository
	Rating       RatingRepository
	Review       ReviewRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Profile:      NewProfileRepository(db),
		Anime:        NewAnimeRepository(db),
		Episode:      NewEpisodeRepository(db),
		WatchHistory: NewWatchHistoryRepository(db),
		MyList:       NewMyListRepository(db),
		Rating:       NewRatingRepository(db),
		Review:       NewReviewRepository(db),
	}
}
