package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	"bitsa_backend/internals/features/users/user/controller"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
)

// UserRoutes mounts /users. Every route requires a session.
func UserRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctrl := controller.NewUserController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("users"), constants.AdminOnly...)

	users := r.Group("/users", protect)

	users.Get("/", adminOnly, ctrl.GetUsers)
	users.Delete("/account/delete", ctrl.DeleteOwnAccount)

	users.Get("/:id", ctrl.GetUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", adminOnly, ctrl.DeleteUser)
}
