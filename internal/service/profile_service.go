package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

// ProfileService maintains the singleton profile document.
type ProfileService struct {
	storage *storage.Storage
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store *storage.Storage) *ProfileService {
	return &ProfileService{storage: store}
}

// GetProfile returns the singleton profile, creating it with defaults on
// first read. Empty stored categories are substituted with the default set in
// the response only.
func (s *ProfileService) GetProfile(ctx context.Context) (*Profile, error) {
	stored, err := s.storage.Profiles.Find(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored, err = s.storage.Profiles.EnsureDefault(ctx, DefaultProfileDocument())
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		Name:       stored.Name,
		Currency:   stored.Currency,
		DarkMode:   stored.DarkMode,
		Categories: ActiveCategories(stored.Categories),
		Onboarded:  stored.Onboarded,
	}, nil
}

// UpdateProfile merges the provided fields into the singleton document. A
// call providing no fields is a no-op reported as StatusNoChanges.
func (s *ProfileService) UpdateProfile(ctx context.Context, update *ProfileUpdate) (string, error) {
	storageUpdate := &mongoconfig.ProfileUpdate{}
	if update != nil {
		storageUpdate.Name = update.Name
		storageUpdate.Currency = update.Currency
		storageUpdate.DarkMode = update.DarkMode
		storageUpdate.Categories = update.Categories
		storageUpdate.Onboarded = update.Onboarded
	}

	if storageUpdate.IsEmpty() {
		return StatusNoChanges, nil
	}

	if err := s.storage.Profiles.Update(ctx, storageUpdate); err != nil {
		return "", err
	}
	return StatusOK, nil
}

// ActiveCategoryList returns the profile's categories if a profile exists
// with a non-empty list, otherwise the defaults. Unlike GetProfile it never
// creates the profile.
func (s *ProfileService) ActiveCategoryList(ctx context.Context) ([]string, error) {
	stored, err := s.storage.Profiles.Find(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return DefaultCategories(), nil
	}
	return ActiveCategories(stored.Categories), nil
}
