package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "bitsa_backend/internals/features/users/auth/route"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, issuer *helperAuth.TokenIssuer, protect fiber.Handler) {
	authRoute.AuthRoutes(api, db, issuer, protect)
}
