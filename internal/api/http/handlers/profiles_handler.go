package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thecoders/cartunn-backend/internal/api/dto"
	"github.com/thecoders/cartunn-backend/internal/service"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// ProfilesHandler manages profile endpoints.
type ProfilesHandler struct {
	service *service.ProfileService
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(profileService *service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{service: profileService}
}

// CreateProfile POST /api/v1/profiles.
func (h *ProfilesHandler) CreateProfile(c *fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	profile, err := h.service.Create(c.UserContext(), service.CreateProfileCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// ListProfiles GET /api/v1/profiles.
func (h *ProfilesHandler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.GetAll(c.UserContext(), service.GetAllProfilesQuery{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponseList(profiles)})
}

// GetProfile GET /api/v1/profiles/:profileId.
func (h *ProfilesHandler) GetProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "profileId")
	if err != nil {
		return err
	}
	profile, err := h.service.GetByID(c.UserContext(), service.GetProfileByIDQuery{ProfileID: id})
	if err != nil {
		return err
	}
	if profile == nil {
		return apperrors.NewNotFound("profile", id)
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// UpdateProfile PUT /api/v1/profiles/:profileId.
func (h *ProfilesHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "profileId")
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	profile, err := h.service.Update(c.UserContext(), service.UpdateProfileCommand{
		ProfileID: id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// DeleteProfile DELETE /api/v1/profiles/:profileId.
func (h *ProfilesHandler) DeleteProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "profileId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), service.DeleteProfileCommand{ProfileID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
