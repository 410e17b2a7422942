package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/repository"
)

type fakeProfileRepo struct {
	byID map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[string]*domain.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	stored := *profile
	r.byID[stored.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	profile, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) ListByUser(_ context.Context, userID string) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	for _, profile := range r.byID {
		if profile.UserID == userID {
			copied := *profile
			profiles = append(profiles, &copied)
		}
	}
	return profiles, nil
}

func (r *fakeProfileRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	profiles, _ := r.ListByUser(ctx, userID)
	return len(profiles), nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id, userID string) error {
	profile, ok := r.byID[id]
	if !ok || profile.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestProfileCreateAndList(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	profile, err := svc.Create(context.Background(), "user_a", &dto.ProfileCreateRequest{
		Name:   "Kids",
		Avatar: "avatar3",
		IsKid:  true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if profile.ID == "" {
		t.Error("Expected profile id to be assigned")
	}
	if !profile.IsKid {
		t.Error("Expected is_kid to be preserved")
	}

	profiles, err := svc.List(context.Background(), "user_a")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("Expected 1 profile, got %d", len(profiles))
	}
}

func TestProfileCreateEnforcesCap(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	for i := 0; i < domain.MaxProfilesPerUser; i++ {
		_, err := svc.Create(context.Background(), "user_b", &dto.ProfileCreateRequest{
			Name:   fmt.Sprintf("Profile %d", i+1),
			Avatar: "avatar1",
		})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i+1, err)
		}
	}

	_, err := svc.Create(context.Background(), "user_b", &dto.ProfileCreateRequest{Name: "One Too Many", Avatar: "avatar1"})
	if !errors.Is(err, ErrProfileLimitExceeded) {
		t.Errorf("Expected ErrProfileLimitExceeded, got %v", err)
	}

	// The cap is per account, not global
	if _, err := svc.Create(context.Background(), "user_c", &dto.ProfileCreateRequest{Name: "Other", Avatar: "avatar2"}); err != nil {
		t.Errorf("Create for another account failed: %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	owned, err := svc.Create(context.Background(), "user_d", &dto.ProfileCreateRequest{Name: "Mine", Avatar: "avatar1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	profile, err := svc.Authorize(context.Background(), "user_d", owned.ID)
	if err != nil {
		t.Fatalf("Authorize failed for owner: %v", err)
	}
	if profile.ID != owned.ID {
		t.Errorf("Expected profile '%s', got '%s'", owned.ID, profile.ID)
	}

	// Someone else's profile reads as not found, never as forbidden
	if _, err := svc.Authorize(context.Background(), "user_e", owned.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound for foreign profile, got %v", err)
	}

	if _, err := svc.Authorize(context.Background(), "user_d", "profile_missing0000"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound for missing profile, got %v", err)
	}
}

func TestProfileDelete(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	owned, err := svc.Create(context.Background(), "user_f", &dto.ProfileCreateRequest{Name: "Mine", Avatar: "avatar1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Deleting a foreign profile fails and leaves it intact
	if err := svc.Delete(context.Background(), "user_g", owned.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound for foreign delete, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), "user_f", owned.ID); err != nil {
		t.Errorf("Profile must survive a foreign delete: %v", err)
	}

	if err := svc.Delete(context.Background(), "user_f", owned.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Authorize(context.Background(), "user_f", owned.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected profile to be gone, got %v", err)
	}
}
