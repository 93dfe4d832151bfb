package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	authDTO "worklaw_backend/internals/features/auth/dto"
	authService "worklaw_backend/internals/features/auth/service"
	"worklaw_backend/internals/constants"
	helper "worklaw_backend/internals/helpers"
)

type AuthController struct {
	Service  *authService.AuthService
	Validate *validator.Validate
}

func NewAuthController(svc *authService.AuthService) *AuthController {
	return &AuthController{Service: svc, Validate: validator.New()}
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !h.Service.Authenticate(req.Username, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.Service.IssueToken(req.Username, constants.RoleAdmin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	// Flat body on purpose: the frontend reads access_token directly.
	return c.Status(fiber.StatusOK).JSON(authDTO.LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInMinutes: h.Service.ExpireMinutes(),
	})
}
