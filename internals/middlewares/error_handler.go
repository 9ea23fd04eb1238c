package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "bitsa_backend/internals/helpers"
)

// ErrorHandler renders every error that escapes a handler through the standard envelope.
// Server-side failures get a generic message; raw details are attached only when exposeDetails is set.
func ErrorHandler(exposeDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := helper.GenericServerMessage

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code < fiber.StatusInternalServerError {
				message = fe.Message
			}
		}

		if code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
			if exposeDetails {
				return helper.JsonErrorWithDetails(c, code, message, err.Error())
			}
		}
		return helper.JsonError(c, code, message)
	}
}
