package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoute "bitsa_backend/internals/features/contact/messages/route"
	blogRoute "bitsa_backend/internals/features/content/blogs/route"
	eventRoute "bitsa_backend/internals/features/content/events/route"
	galleryRoute "bitsa_backend/internals/features/content/gallery/route"
	statsRoute "bitsa_backend/internals/features/stats/route"
	statsService "bitsa_backend/internals/features/stats/service"
)

// ContentRoutes mounts blogs, events, gallery and contact.
func ContentRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	blogRoute.BlogRoutes(api, db, protect)
	eventRoute.EventRoutes(api, db, protect)
	galleryRoute.GalleryRoutes(api, db, protect)
	contactRoute.ContactMessageRoutes(api, db, protect)
}

func StatsRoutes(api fiber.Router, stats *statsService.StatsService) {
	statsRoute.StatsRoutes(api, stats)
}
