package route

import (
	"github.com/gofiber/fiber/v2"

	"bitsa_backend/internals/features/stats/controller"
	"bitsa_backend/internals/features/stats/service"
)

func StatsRoutes(r fiber.Router, svc *service.StatsService) {
	ctrl := controller.NewStatsController(svc)

	stats := r.Group("/stats")
	stats.Get("/public", ctrl.GetPublicStats)
}
