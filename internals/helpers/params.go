package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseIDParam reads a uuid path parameter. A malformed id cannot exist, so it is a 404.
func ParseIDParam(c *fiber.Ctx, name, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	return id, nil
}
