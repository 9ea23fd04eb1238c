package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	"bitsa_backend/internals/features/admin/dashboard/controller"
	userController "bitsa_backend/internals/features/users/user/controller"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
)

// AdminRoutes mounts /admin. Every route requires an ADMIN session.
func AdminRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	dashboardCtrl := controller.NewDashboardController(db)
	usersCtrl := userController.NewUserController(db)

	admin := r.Group("/admin",
		protect,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("the admin console"), constants.AdminOnly...),
	)

	admin.Get("/stats", dashboardCtrl.GetDashboardStats)
	admin.Get("/users", usersCtrl.GetUsers)
}
