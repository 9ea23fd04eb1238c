package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	"bitsa_backend/internals/features/content/events/controller"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
)

// EventRoutes mounts /events. Static paths are registered before /:id.
func EventRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctrl := controller.NewEventController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("events"), constants.AdminOnly...)

	events := r.Group("/events")

	// 🔓 Public
	events.Get("/", ctrl.GetEvents)

	// 🔐 Authenticated (static paths first)
	events.Get("/my-events", protect, ctrl.GetMyEvents)
	events.Get("/user/registrations", protect, ctrl.GetUserRegistrations)
	events.Get("/admin/pending", protect, adminOnly, ctrl.GetPendingEvents)

	events.Get("/:id", ctrl.GetEvent)
	events.Get("/:id/attendees", protect, adminOnly, ctrl.GetEventAttendees)

	events.Post("/", protect, ctrl.CreateEvent)
	events.Put("/:id", protect, ctrl.UpdateEvent)
	events.Delete("/:id", protect, ctrl.DeleteEvent)
	events.Post("/:id/register", protect, ctrl.RegisterForEvent)

	// 🛡️ Moderation
	events.Post("/:id/approve", protect, adminOnly, ctrl.ApproveEvent)
	events.Post("/:id/reject", protect, adminOnly, ctrl.RejectEvent)
}
