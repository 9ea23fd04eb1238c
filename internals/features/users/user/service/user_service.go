package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	blogModel "bitsa_backend/internals/features/content/blogs/model"
	eventModel "bitsa_backend/internals/features/content/events/model"
	eventService "bitsa_backend/internals/features/content/events/service"
	userDTO "bitsa_backend/internals/features/users/user/dto"
	userModel "bitsa_backend/internals/features/users/user/model"
	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

const MsgUserNotFound = "User not found"

type ListQuery struct {
	Search string
	Role   string
	Offset int
	Limit  int
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// List searches fullName, email and studentId case-insensitively, newest first.
func (s *UserService) List(ctx context.Context, q ListQuery) ([]userDTO.UserResponse, int64, error) {
	base := s.DB.WithContext(ctx).Model(&userModel.UserModel{})
	if q.Search != "" {
		like := helper.LikePattern(q.Search)
		base = base.Where(`(LOWER(full_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(student_id) LIKE ? ESCAPE '\')`, like, like, like)
	}
	if q.Role != "" {
		base = base.Where("role = ?", q.Role)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgUserNotFound)
	}
	users := make([]userModel.UserModel, 0)
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").Order("id DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgUserNotFound)
	}
	return userDTO.FromModels(users), total, nil
}

func (s *UserService) Find(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
		}
		return nil, helper.MapDBError(err, "", MsgUserNotFound)
	}
	return &u, nil
}

// UpdateProfile lets a user edit their own profile, or an admin edit anyone's.
// Only fullName, phoneNumber and bio are writable.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, caller helperAuth.Session, req *userDTO.UpdateProfileRequest) (userDTO.UserResponse, error) {
	if _, err := s.Find(ctx, id); err != nil {
		return userDTO.UserResponse{}, err
	}
	if caller.UserID != id && !caller.IsAdmin() {
		return userDTO.UserResponse{}, fiber.NewError(fiber.StatusForbidden, "You can only update your own profile")
	}

	if updates := req.Updates(); len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return userDTO.UserResponse{}, helper.MapDBError(err, "Profile conflicts with another user", MsgUserNotFound)
		}
	}
	u, err := s.Find(ctx, id)
	if err != nil {
		return userDTO.UserResponse{}, err
	}
	return userDTO.FromModel(u), nil
}

// Delete removes the user and everything hanging off them in one transaction:
// their registrations, their events (with those events' registrations and gallery links)
// and their blog posts.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&eventModel.EventRegistrationModel{}).Error; err != nil {
			return err
		}

		var eventIDs []uuid.UUID
		if err := tx.Model(&eventModel.EventModel{}).Where("author_id = ?", id).Pluck("id", &eventIDs).Error; err != nil {
			return err
		}
		if err := eventService.DeleteEventsTx(tx, eventIDs); err != nil {
			return err
		}

		if err := tx.Where("author_id = ?", id).Delete(&blogModel.BlogPostModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&userModel.UserModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
		}
		return nil
	})
	if err != nil {
		return helper.MapDBError(err, "", MsgUserNotFound)
	}
	log.Printf("[USERS] deleted user %s", id)
	return nil
}

func (s *UserService) Total(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).Count(&n).Error
	return n, err
}
