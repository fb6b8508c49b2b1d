package middleware

import (
	"strings"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/core/domain"
	"residential-hub/internal/core/services"
	"residential-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// sessionKey is the fiber.Ctx locals key holding the resolved session.
const sessionKey = "session"

// BearerToken extracts the bearer token from the Authorization header.
// Empty string when absent or malformed.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AuthMiddleware requires a live session. The bearer token must resolve in
// the session store; the account behind it is not revalidated. On success
// the session is stashed in locals for handlers and role checks.
func AuthMiddleware(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := BearerToken(c)
		if bearer == "" {
			return response.Unauthorized(c, "Unauthorized")
		}

		session, err := authService.Resolve(c.Context(), bearer)
		if err != nil {
			return response.Unauthorized(c, "Unauthorized")
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// SessionFromCtx returns the session stashed by AuthMiddleware, or nil.
func SessionFromCtx(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals(sessionKey).(*models.Session)
	return session
}

// RoleMiddleware requires the session role to exactly match one of the
// allowed roles. No hierarchy: admin does not implicitly satisfy a
// resident-only check. Must run after AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFromCtx(c)
		if session == nil {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if session.Role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Forbidden")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}
