package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"bitsa_backend/internals/features/stats/service"
	helper "bitsa_backend/internals/helpers"
)

type StatsController struct {
	Service *service.StatsService
}

func NewStatsController(svc *service.StatsService) *StatsController {
	return &StatsController{Service: svc}
}

// GET /api/stats/public
func (sc *StatsController) GetPublicStats(c *fiber.Ctx) error {
	st, err := sc.Service.Public(c.UserContext())
	if err != nil {
		log.Printf("[STATS] public stats failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}
	return helper.JsonOK(c, "Statistics fetched successfully", st)
}
