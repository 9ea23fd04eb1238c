package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation covers gorm's translated error, raw pg 23505 and sqlite UNIQUE failures.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint") || strings.Contains(low, "duplicate key")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// MapDBError translates a datastore error into a *fiber.Error.
// conflictMsg is used for unique violations, notFoundMsg for missing rows and broken references.
// An empty notFoundMsg marks reads that cannot miss, so those errors fall through to a 500.
func MapDBError(err error, conflictMsg, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && notFoundMsg != "":
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case IsUniqueViolation(err):
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	case IsForeignKeyViolation(err) && notFoundMsg != "":
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	log.Printf("[DB] unexpected error: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, GenericServerMessage)
}
