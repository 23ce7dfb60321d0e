package service

import (
	"context"

	"github.com/thecoders/cartunn-backend/internal/domain"
	"github.com/thecoders/cartunn-backend/internal/repository"
)

// CreateProfileCommand carries all field values for a new profile.
type CreateProfileCommand struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfileCommand carries the target identity plus all mutable fields.
type UpdateProfileCommand struct {
	ProfileID int64
	FirstName string
	LastName  string
	Email     string
}

// DeleteProfileCommand targets a profile for removal.
type DeleteProfileCommand struct {
	ProfileID int64
}

// GetProfileByIDQuery requests a single profile.
type GetProfileByIDQuery struct {
	ProfileID int64
}

// GetAllProfilesQuery requests every profile.
type GetAllProfilesQuery struct{}

// ProfileService handles profile commands and queries.
type ProfileService struct {
	core crudCore[domain.Profile]
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		core: crudCore[domain.Profile]{
			kind:                   "profile",
			keyOf:                  func(p *domain.Profile) string { return p.Email },
			existsByKey:            profiles.ExistsByEmail,
			existsByKeyExcludingID: profiles.ExistsByEmailExcludingID,
			existsByID:             profiles.ExistsByID,
			findByID:               profiles.FindByID,
			findAll:                profiles.FindAll,
			save:                   profiles.Save,
			deleteByID:             profiles.DeleteByID,
			apply: func(dst, src *domain.Profile) {
				dst.FirstName = src.FirstName
				dst.LastName = src.LastName
				dst.Email = src.Email
			},
		},
	}
}

// Create registers a new profile after checking email uniqueness.
func (s *ProfileService) Create(ctx context.Context, cmd CreateProfileCommand) (*domain.Profile, error) {
	return s.core.create(ctx, &domain.Profile{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
	})
}

// Update overwrites every mutable field of an existing profile.
func (s *ProfileService) Update(ctx context.Context, cmd UpdateProfileCommand) (*domain.Profile, error) {
	return s.core.update(ctx, cmd.ProfileID, &domain.Profile{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
	})
}

// Delete removes an existing profile.
func (s *ProfileService) Delete(ctx context.Context, cmd DeleteProfileCommand) error {
	return s.core.delete(ctx, cmd.ProfileID)
}

// GetByID returns the profile or nil when absent.
func (s *ProfileService) GetByID(ctx context.Context, query GetProfileByIDQuery) (*domain.Profile, error) {
	return s.core.getByID(ctx, query.ProfileID)
}

// GetAll returns every profile in store order.
func (s *ProfileService) GetAll(ctx context.Context, _ GetAllProfilesQuery) ([]domain.Profile, error) {
	return s.core.getAll(ctx)
}
