// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bitsa_backend/internals/features/users/auth/controller"
	helperAuth "bitsa_backend/internals/helpers/auth"
	rateLimiter "bitsa_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, issuer *helperAuth.TokenIssuer, protect fiber.Handler) {
	authController := controller.NewAuthController(db, issuer)

	baseAuth := r.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔐 Protected
	baseAuth.Get("/me", protect, authController.Me)
	baseAuth.Post("/change-password", protect, authController.ChangePassword)
}
