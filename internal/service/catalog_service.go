package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/repository"
)

const (
	defaultListLimit     = 20
	shelfLimit           = 10
	recommendationsLimit = 10
	defaultSearchLimit   = 10
)

// catalogService implements CatalogService interface
type catalogService struct {
	animeRepo   repository.AnimeRepository
	episodeRepo repository.EpisodeRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(animeRepo repository.AnimeRepository, episodeRepo repository.EpisodeRepository) CatalogService {
	return &catalogService{
		animeRepo:   animeRepo,
		episodeRepo: episodeRepo,
	}
}

func (s *catalogService) List(ctx context.Context, filter repository.AnimeFilter) ([]*domain.Anime, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	anime, err := s.animeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list anime: %w", err)
	}
	return anime, nil
}

func (s *catalogService) Trending(ctx context.Context) ([]*domain.Anime, error) {
	anime, err := s.animeRepo.List(ctx, repository.AnimeFilter{Limit: shelfLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to list trending anime: %w", err)
	}
	return anime, nil
}

func (s *catalogService) NewReleases(ctx context.Context) ([]*domain.Anime, error) {
	anime, err := s.animeRepo.ListNewest(ctx, shelfLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list new releases: %w", err)
	}
	return anime, nil
}

func (s *catalogService) Get(ctx context.Context, animeID string) (*domain.Anime, error) {
	anime, err := s.animeRepo.GetByID(ctx, animeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get anime: %w", err)
	}
	return anime, nil
}

func (s *catalogService) Episodes(ctx context.Context, animeID string) ([]*domain.Episode, error) {
	episodes, err := s.episodeRepo.ListByAnime(ctx, animeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	return episodes, nil
}

// Recommendations returns titles sharing a genre with the given anime. An
// unknown anime id yields an empty list, not an error.
func (s *catalogService) Recommendations(ctx context.Context, animeID string) ([]*domain.Anime, error) {
	anime, err := s.animeRepo.GetByID(ctx, animeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []*domain.Anime{}, nil
		}
		return nil, fmt.Errorf("failed to get anime: %w", err)
	}

	recommendations, err := s.animeRepo.Recommendations(ctx, anime.ID, anime.Genres, recommendationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recommendations, nil
}

func (s *catalogService) Search(ctx context.Context, query string, limit int) ([]*domain.AnimeSummary, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results, err := s.animeRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search anime: %w", err)
	}
	return results, nil
}
