// internals/middlewares/auth/claims_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "bitsa_backend/internals/features/users/user/model"
	helper "bitsa_backend/internals/helpers"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("No token provided")
	}

	tok := strings.Trim(helper.ExtractBearerToken(auth), "\"'")
	if tok == "" {
		return "", errors.New("Invalid token format")
	}
	return tok, nil
}

/* ======== DB checks ======== */

// ensureUserActive returns the stored role, or gorm.ErrRecordNotFound when the account is gone.
func ensureUserActive(c *fiber.Ctx, db *gorm.DB, userID uuid.UUID) (string, error) {
	var row struct {
		Role string
	}
	res := db.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Select("role").
		Where("id = ?", userID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return row.Role, nil
}
