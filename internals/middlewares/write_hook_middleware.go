package middlewares

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// AfterWrite runs hook once a non-GET request under this prefix has succeeded (status < 400).
func AfterWrite(hook func(ctx context.Context)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return nil
		}
		if c.Response().StatusCode() < fiber.StatusBadRequest {
			hook(c.UserContext())
		}
		return nil
	}
}
