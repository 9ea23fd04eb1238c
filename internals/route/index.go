// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"bitsa_backend/internals/configs"
	statsService "bitsa_backend/internals/features/stats/service"
	helperAuth "bitsa_backend/internals/helpers/auth"
	"bitsa_backend/internals/middlewares"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
	routeDetails "bitsa_backend/internals/route/details"
)

var startTime = time.Now()

const requestTimeout = 5 * time.Second

// NewApp builds the Fiber app with the full middleware chain and every route mounted.
func NewApp(db *gorm.DB, cfg configs.Config, stats *statsService.StatsService) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler(cfg.IsDevelopment()),
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RequestContext(requestTimeout))
	middlewares.SetupMiddlewares(app, cfg)

	SetupRoutes(app, db, cfg, stats)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, stats *statsService.StatsService) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg)

	issuer := helperAuth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	protect := authMiddleware.AuthMiddleware(db, issuer)

	api := app.Group("/api")

	// writes that can move the public counters drop the cached stats
	invalidateStats := middlewares.AfterWrite(stats.Invalidate)
	for _, prefix := range []string{"/auth/register", "/users", "/blogs", "/events"} {
		api.Use(prefix, invalidateStats)
	}

	log.Println("[INFO] Mounting auth routes...")
	routeDetails.AuthRoutes(api, db, issuer, protect)

	log.Println("[INFO] Mounting user & admin routes...")
	routeDetails.UserRoutes(api, db, protect)

	log.Println("[INFO] Mounting content routes...")
	routeDetails.ContentRoutes(api, db, protect)

	log.Println("[INFO] Mounting stats routes...")
	routeDetails.StatsRoutes(api, stats)

	// Unknown paths answer with the standard envelope.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
