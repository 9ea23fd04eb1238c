package user

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bitsa_backend/internals/constants"
	authHelper "bitsa_backend/internals/features/users/auth/helper"
	"bitsa_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	StudentID   string `json:"studentId"`
	Course      string `json:"course"`
	YearOfStudy int    `json:"yearOfStudy"`
	Role        string `json:"role"`
}

func (s *UserSeed) normalize() error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.StudentID = strings.TrimSpace(s.StudentID)
	s.Role = strings.ToUpper(strings.TrimSpace(s.Role))
	if s.Role == "" {
		s.Role = constants.RoleStudent
	}
	if s.Course == "" {
		s.Course = "N/A"
	}
	if s.YearOfStudy < 1 || s.YearOfStudy > 4 {
		s.YearOfStudy = 1
	}
	switch {
	case s.Email == "" || s.StudentID == "" || s.FullName == "":
		return errors.New("email, fullName and studentId are required")
	case len(s.Password) < 6:
		return errors.New("password must be at least 6 characters")
	case !constants.IsValidRole(s.Role):
		return fmt.Errorf("unknown role %q", s.Role)
	}
	return nil
}

// insert creates the user unless the email or student id is already taken.
func insert(db *gorm.DB, data UserSeed) (bool, error) {
	hashedPassword, err := authHelper.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	newUser := model.UserModel{
		Email:       data.Email,
		Password:    hashedPassword,
		FullName:    data.FullName,
		StudentID:   data.StudentID,
		Course:      data.Course,
		YearOfStudy: data.YearOfStudy,
		Role:        data.Role,
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&newUser)
	return res.RowsAffected > 0, res.Error
}

// EnsureAdmin creates the admin account, or promotes an existing account with that email.
func EnsureAdmin(db *gorm.DB, seed UserSeed) error {
	seed.Role = constants.RoleAdmin
	if err := seed.normalize(); err != nil {
		return fmt.Errorf("admin seed: %w", err)
	}

	var existing model.UserModel
	err := db.Where("email = ?", seed.Email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Role == constants.RoleAdmin {
			log.Printf("[SEED] admin '%s' already present", seed.Email)
			return nil
		}
		if err := db.Model(&existing).Update("role", constants.RoleAdmin).Error; err != nil {
			return err
		}
		log.Printf("[SEED] promoted '%s' to ADMIN", seed.Email)
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	created, err := insert(db, seed)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("admin seed: student id %q is taken by another account", seed.StudentID)
	}
	log.Printf("[SEED] created admin '%s'", seed.Email)
	return nil
}

// SeedUsersFromJSON loads an array of UserSeed. Existing emails/student ids are skipped.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("[SEED] reading users file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	inserted := 0
	for i, data := range inputs {
		if err := data.normalize(); err != nil {
			log.Printf("[SEED] entry %d skipped: %v", i, err)
			continue
		}
		created, err := insert(db, data)
		if err != nil {
			log.Printf("[SEED] insert '%s' failed: %v", data.Email, err)
			continue
		}
		if !created {
			log.Printf("[SEED] user '%s' already exists, skipped", data.Email)
			continue
		}
		inserted++
		log.Printf("[SEED] inserted user '%s'", data.Email)
	}
	return inserted, nil
}
