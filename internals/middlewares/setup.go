package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"bitsa_backend/internals/configs"
	"bitsa_backend/internals/middlewares/logger"
	"bitsa_backend/internals/middlewares/metrics"
)

// SetupMiddlewares installs the app-wide chain. Route-specific limiters are attached by the routes.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.FrontendURL))
	app.Use(metrics.Middleware())
	app.Use(GlobalRateLimiter())
}
