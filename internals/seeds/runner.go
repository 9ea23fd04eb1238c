package seeds

import (
	"log"

	"gorm.io/gorm"

	"bitsa_backend/internals/configs"
	users "bitsa_backend/internals/seeds/users/auth"
)

// RunAllSeeds ensures the admin account from SEED_ADMIN_* and then loads SEED_USERS_FILE.
// Both steps are idempotent.
func RunAllSeeds(db *gorm.DB, cfg configs.Config) error {
	//* Admin
	if cfg.SeedAdminEmail != "" {
		if err := users.EnsureAdmin(db, users.UserSeed{
			Email:     cfg.SeedAdminEmail,
			Password:  cfg.SeedAdminPassword,
			FullName:  cfg.SeedAdminName,
			StudentID: cfg.SeedAdminStudentID,
		}); err != nil {
			return err
		}
	} else {
		log.Println("[SEED] SEED_ADMIN_EMAIL not set, admin seed skipped")
	}

	//* Users
	if cfg.SeedUsersFile != "" {
		n, err := users.SeedUsersFromJSON(db, cfg.SeedUsersFile)
		if err != nil {
			return err
		}
		log.Printf("[SEED] %d users inserted", n)
	}
	return nil
}
