package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/configs"
	database "bitsa_backend/internals/databases"
	"bitsa_backend/internals/middlewares/metrics"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BITSA API is running 🚀")
	})

	health := healthHandler(db, cfg)
	app.Get("/health", health)
	app.Get("/api/health", health)

	app.Get("/metrics", metrics.Handler())
}

func healthHandler(db *gorm.DB, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(ctx, db); err != nil {
			dbStatus = "disconnected"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":        serverStatus,
			"database":      dbStatus,
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"uptimeSeconds": int(time.Since(startTime).Seconds()),
			"environment":   cfg.AppEnv,
		})
	}
}
