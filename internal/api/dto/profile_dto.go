package dto

import "github.com/thecoders/cartunn-backend/internal/domain"

// CreateProfileRequest payload for new profiles.
type CreateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpdateProfileRequest payload for profile updates.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ProfileResponse representation of a profile.
type ProfileResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewProfileResponse maps a domain profile to its response shape.
func NewProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
	}
}

// NewProfileResponseList maps a slice of profiles.
func NewProfileResponseList(profiles []domain.Profile) []ProfileResponse {
	result := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		result[i] = NewProfileResponse(&profiles[i])
	}
	return result
}
