// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

// AuthMiddleware verifies the bearer token and attaches the caller's Session.
// The role is re-read from the users table so a demoted or deleted account loses access immediately.
func AuthMiddleware(db *gorm.DB, issuer *helperAuth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		sess, err := issuer.Parse(tokenString)
		if err != nil {
			if errors.Is(err, helperAuth.ErrMissingSecret) {
				log.Println("[AUTH] JWT_SECRET is empty")
				return helper.JsonError(c, fiber.StatusInternalServerError, "")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		role, err := ensureUserActive(c, db, sess.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User no longer exists")
			}
			log.Printf("[AUTH] user lookup failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}
		sess.Role = role

		helperAuth.SetSession(c, sess)
		return c.Next()
	}
}
