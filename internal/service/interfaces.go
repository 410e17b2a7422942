package service

import (
	"context"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/repository"
)

// AuthService defines authentication and session operations
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error)
	// ExchangeSession trades a provider session id for an account and a
	// session keyed on the provider-issued token.
	ExchangeSession(ctx context.Context, sessionID string) (*AuthResult, error)
	// ResolveSession turns an opaque bearer token into the authenticated
	// account, or fails with one of the authorization errors.
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
	// SessionMaxAge returns the session lifetime in whole seconds, for
	// cookie max-age.
	SessionMaxAge() int
}

// ProfileService defines profile management and the ownership guard
type ProfileService interface {
	List(ctx context.Context, userID string) ([]*domain.Profile, error)
	Create(ctx context.Context, userID string, req *dto.ProfileCreateRequest) (*domain.Profile, error)
	Delete(ctx context.Context, userID, profileID string) error
	// Authorize returns the profile iff it exists and belongs to userID.
	// Every profile-scoped operation must go through this guard and use
	// the returned profile, never a caller-supplied id.
	Authorize(ctx context.Context, userID, profileID string) (*domain.Profile, error)
}

// CatalogService defines read-only catalog operations
type CatalogService interface {
	List(ctx context.Context, filter repository.AnimeFilter) ([]*domain.Anime, error)
	Trending(ctx context.Context) ([]*domain.Anime, error)
	NewReleases(ctx context.Context) ([]*domain.Anime, error)
	Get(ctx context.Context, animeID string) (*domain.Anime, error)
	Episodes(ctx context.Context, animeID string) ([]*domain.Episode, error)
	Recommendations(ctx context.Context, animeID string) ([]*domain.Anime, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.AnimeSummary, error)
}

// LibraryService defines profile-scoped collection operations. Every method
// runs the ownership guard before touching data.
type LibraryService interface {
	SaveProgress(ctx context.Context, userID, profileID string, req *dto.WatchProgressRequest) error
	ContinueWatching(ctx context.Context, userID, profileID string) ([]*domain.ContinueWatchingEntry, error)

	AddToList(ctx context.Context, userID, profileID, animeID string) error
	GetList(ctx context.Context, userID, profileID string) ([]*domain.Anime, error)
	RemoveFromList(ctx context.Context, userID, profileID, animeID string) error

	SaveRating(ctx context.Context, userID, profileID string, req *dto.RatingRequest) error
	GetRating(ctx context.Context, userID, profileID, animeID string) (*dto.RatingResponse, error)

	CreateReview(ctx context.Context, userID, profileID string, req *dto.ReviewRequest) (string, error)
	GetReviews(ctx context.Context, animeID string) ([]*domain.Review, error)
}

// SessionExchanger is the outbound contract of the external auth provider
type SessionExchanger interface {
	Exchange(ctx context.Context, sessionID string) (*ProviderIdentity, error)
}
