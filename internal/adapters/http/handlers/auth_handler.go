package handlers

import (
	"errors"

	"residential-hub/internal/adapters/http/middleware"
	"residential-hub/internal/core/domain"
	"residential-hub/internal/core/services"
	"residential-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles account registration
// @Summary Register a new resident account
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return response.BadRequest(c, "Email, password and name are required")
	}

	account, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Registration failed")
		}
	}

	return response.Created(c, "Registration successful", fiber.Map{
		"user_id": account.ID,
	})
}

// Login handles login and session issuance
// @Summary Login with email and password
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		default:
			return response.InternalServerError(c, "Login failed")
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.Account,
	})
}

// Logout revokes the current session. Deliberately not behind the auth
// middleware: logging out with a missing, malformed or already-revoked
// token is a no-op that still answers 200.
// @Summary Logout and revoke the session
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	bearer := middleware.BearerToken(c)

	if err := h.authService.Logout(c.Context(), bearer); err != nil {
		return response.InternalServerError(c, "Logout failed")
	}

	return response.Success(c, "Logged out", nil)
}
