package moderation

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "bitsa_backend/internals/helpers/auth"
)

// ActorFromCtx builds the Actor from the session attached by the auth middleware.
func ActorFromCtx(c *fiber.Ctx) (Actor, error) {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return Actor{}, err
	}
	return Actor{UserID: sess.UserID, Role: sess.Role}, nil
}
