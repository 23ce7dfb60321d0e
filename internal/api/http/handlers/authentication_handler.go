package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thecoders/cartunn-backend/internal/api/dto"
	"github.com/thecoders/cartunn-backend/internal/service"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// AuthenticationHandler manages sign-up and sign-in endpoints.
type AuthenticationHandler struct {
	service *service.IamService
}

// NewAuthenticationHandler constructs handler.
func NewAuthenticationHandler(iamService *service.IamService) *AuthenticationHandler {
	return &AuthenticationHandler{service: iamService}
}

// SignUp POST /api/v1/authentication/sign-up.
func (h *AuthenticationHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, err := h.service.SignUp(c.UserContext(), service.SignUpCommand{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// SignIn POST /api/v1/authentication/sign-in.
func (h *AuthenticationHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, token, err := h.service.SignIn(c.UserContext(), service.SignInCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAuthenticatedUserResponse(user, token)})
}
