package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bitsa_backend/internals/constants"
)

// Locals keys filled by the auth middleware.
const (
	LocSession = "session"
	LocUserID  = "user_id"
	LocRole    = "userRole"
	LocEmail   = "userEmail"
)

// Session is the verified caller identity attached to a request.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (s Session) IsAdmin() bool {
	return s.Role == constants.RoleAdmin
}

func SetSession(c *fiber.Ctx, s Session) {
	c.Locals(LocSession, s)
	c.Locals(LocUserID, s.UserID.String())
	c.Locals(LocRole, s.Role)
	c.Locals(LocEmail, s.Email)
}

// GetSession returns the session attached by the auth middleware, or 401.
func GetSession(c *fiber.Ctx) (Session, error) {
	s, ok := c.Locals(LocSession).(Session)
	if !ok || s.UserID == uuid.Nil {
		return Session{}, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	return s, nil
}
