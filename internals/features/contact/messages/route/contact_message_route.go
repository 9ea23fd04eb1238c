package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	"bitsa_backend/internals/features/contact/messages/controller"
	"bitsa_backend/internals/middlewares"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
)

// ContactMessageRoutes mounts /contact: public submit, admin inbox.
func ContactMessageRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctrl := controller.NewContactMessageController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("messages"), constants.AdminOnly...)

	contact := r.Group("/contact")

	contact.Post("/", middlewares.ContactRateLimiter(), ctrl.SubmitMessage)

	contact.Get("/", protect, adminOnly, ctrl.GetMessages)
	contact.Patch("/:id/read", protect, adminOnly, ctrl.MarkAsRead)
	contact.Delete("/:id", protect, adminOnly, ctrl.DeleteMessage)
}
