package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/repository"
	"github.com/WesleyJeean/Animeflix/internal/utils"
)

// profileService implements ProfileService interface
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) List(ctx context.Context, userID string) ([]*domain.Profile, error) {
	profiles, err := s.profileRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *profileService) Create(ctx context.Context, userID string, req *dto.ProfileCreateRequest) (*domain.Profile, error) {
	count, err := s.profileRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}
	if count >= domain.MaxProfilesPerUser {
		return nil, ErrProfileLimitExceeded
	}

	profile := &domain.Profile{
		ID:     utils.NewID("profile"),
		UserID: userID,
		Name:   req.Name,
		Avatar: req.Avatar,
		IsKid:  req.IsKid,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// Delete removes a profile. The delete statement itself carries the
// ownership predicate, so a profile belonging to another account reads as
// not found.
func (s *profileService) Delete(ctx context.Context, userID, profileID string) error {
	if err := s.profileRepo.Delete(ctx, profileID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// Authorize is the ownership guard. A missing profile and a profile owned
// by another account are indistinguishable to the caller.
func (s *profileService) Authorize(ctx context.Context, userID, profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.UserID != userID {
		return nil, ErrProfileNotFound
	}

	return profile, nil
}
