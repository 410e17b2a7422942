package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/repository"
	"github.com/WesleyJeean/Animeflix/internal/utils"
)

const (
	continueWatchingLimit = 10
	reviewsLimit          = 100
)

// libraryService implements LibraryService interface. Every operation runs
// the profile ownership guard first and acts on the profile it returns.
type libraryService struct {
	profiles    ProfileService
	historyRepo repository.WatchHistoryRepository
	myListRepo  repository.MyListRepository
	ratingRepo  repository.RatingRepository
	reviewRepo  repository.ReviewRepository
}

// NewLibraryService creates a new library service
func NewLibraryService(
	profiles ProfileService,
	historyRepo repository.WatchHistoryRepository,
	myListRepo repository.MyListRepository,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
) LibraryService {
	return &libraryService{
		profiles:    profiles,
		historyRepo: historyRepo,
		myListRepo:  myListRepo,
		ratingRepo:  ratingRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *libraryService) SaveProgress(ctx context.Context, userID, profileID string, req *dto.WatchProgressRequest) error {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return err
	}

	record := &domain.WatchHistory{
		ID:              utils.NewID("history"),
		ProfileID:       profile.ID,
		AnimeID:         req.AnimeID,
		EpisodeID:       req.EpisodeID,
		ProgressSeconds: req.ProgressSeconds,
		LastWatchedAt:   time.Now().UTC(),
		Completed:       req.Completed,
	}

	if err := s.historyRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to save watch progress: %w", err)
	}
	return nil
}

func (s *libraryService) ContinueWatching(ctx context.Context, userID, profileID string) ([]*domain.ContinueWatchingEntry, error) {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ContinueWatching(ctx, profile.ID, continueWatchingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list continue watching: %w", err)
	}
	return entries, nil
}

func (s *libraryService) AddToList(ctx context.Context, userID, profileID, animeID string) error {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return err
	}

	item := &domain.MyListItem{
		ID:        utils.NewID("list"),
		ProfileID: profile.ID,
		AnimeID:   animeID,
		AddedAt:   time.Now().UTC(),
	}

	if err := s.myListRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateListEntry) {
			return ErrDuplicateListEntry
		}
		return fmt.Errorf("failed to add to list: %w", err)
	}
	return nil
}

func (s *libraryService) GetList(ctx context.Context, userID, profileID string) ([]*domain.Anime, error) {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	anime, err := s.myListRepo.ListAnime(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return anime, nil
}

func (s *libraryService) RemoveFromList(ctx context.Context, userID, profileID, animeID string) error {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return err
	}

	if err := s.myListRepo.Remove(ctx, profile.ID, animeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("failed to remove from list: %w", err)
	}
	return nil
}

func (s *libraryService) SaveRating(ctx context.Context, userID, profileID string, req *dto.RatingRequest) error {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return err
	}

	rating := &domain.Rating{
		ID:        utils.NewID("rating"),
		ProfileID: profile.ID,
		AnimeID:   req.AnimeID,
		Liked:     req.Liked,
		Score:     req.Score,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}

// GetRating returns the profile's verdict for an anime. An unrated anime
// yields a response with both fields null rather than an error.
func (s *libraryService) GetRating(ctx context.Context, userID, profileID, animeID string) (*dto.RatingResponse, error) {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.Get(ctx, profile.ID, animeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &dto.RatingResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &dto.RatingResponse{Liked: rating.Liked, Score: rating.Score}, nil
}

func (s *libraryService) CreateReview(ctx context.Context, userID, profileID string, req *dto.ReviewRequest) (string, error) {
	profile, err := s.profiles.Authorize(ctx, userID, profileID)
	if err != nil {
		return "", err
	}

	review := &domain.Review{
		ID:          utils.NewID("review"),
		ProfileID:   profile.ID,
		ProfileName: profile.Name,
		AnimeID:     req.AnimeID,
		Title:       req.Title,
		Content:     req.Content,
		Spoiler:     req.Spoiler,
		Rating:      req.Rating,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return "", fmt.Errorf("failed to create review: %w", err)
	}
	return review.ID, nil
}

func (s *libraryService) GetReviews(ctx context.Context, animeID string) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.ListByAnime(ctx, animeID, reviewsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
