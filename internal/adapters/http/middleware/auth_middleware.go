package middleware

import (
	"strings"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/config"
	"smartlining-api/internal/pkg/jwt"
	"smartlining-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Access token required")
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("nombre", claims.Nombre)
		c.Locals("rol", claims.Rol)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, ok := c.Locals("rol").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if rol == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the ADMINISTRADOR role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(models.RolAdministrador)
}

// EmpleadoOrAdmin middleware allows EMPLEADO or ADMINISTRADOR roles
func EmpleadoOrAdmin() fiber.Handler {
	return RoleMiddleware(models.RolEmpleado, models.RolAdministrador)
}
