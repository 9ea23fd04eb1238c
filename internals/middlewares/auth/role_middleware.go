package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Must run after AuthMiddleware.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := helperAuth.GetSession(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}

		for _, allowed := range allowedRoles {
			if sess.Role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
