package middleware

import (
	"strings"

	"tillpoint/internal/config"
	"tillpoint/internal/core/domain"
	"tillpoint/internal/pkg/jwt"
	"tillpoint/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates token validation middleware. Missing, invalid
// and expired tokens all answer 403: the client must re-authenticate,
// there is no silent refresh.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Forbidden(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Forbidden(c, "Access token expired")
			}
			return response.Forbidden(c, "Invalid access token")
		}

		// 5. Set principal info in context
		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Forbidden(c, "Forbidden")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// ManagerOnly middleware allows only the manager role
func ManagerOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleManager)
}
