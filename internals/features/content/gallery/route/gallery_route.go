package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	"bitsa_backend/internals/features/content/gallery/controller"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
)

// GalleryRoutes mounts /gallery: public read, admin write.
func GalleryRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctrl := controller.NewGalleryController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("gallery"), constants.AdminOnly...)

	gallery := r.Group("/gallery")

	gallery.Get("/", ctrl.GetPhotos)
	gallery.Get("/:id", ctrl.GetPhoto)

	gallery.Post("/", protect, adminOnly, ctrl.CreatePhoto)
	gallery.Put("/:id", protect, adminOnly, ctrl.UpdatePhoto)
	gallery.Delete("/:id", protect, adminOnly, ctrl.DeletePhoto)
}
