package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "bitsa_backend/internals/features/admin/dashboard/route"
	userRoute "bitsa_backend/internals/features/users/user/route"
)

// UserRoutes mounts /users and the /admin console.
func UserRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	userRoute.UserRoutes(api, db, protect)
	adminRoute.AdminRoutes(api, db, protect)
}
