package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authDTO "bitsa_backend/internals/features/users/auth/dto"
	authHelper "bitsa_backend/internals/features/users/auth/helper"
	authRepo "bitsa_backend/internals/features/users/auth/repository"
	userDTO "bitsa_backend/internals/features/users/user/dto"
	userModel "bitsa_backend/internals/features/users/user/model"
	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgUserExists         = "User with this email or student ID already exists"
	MsgUserNotFound       = "User not found"
	MsgWrongPassword      = "Current password is incorrect"
)

type AuthService struct {
	DB     *gorm.DB
	Issuer *helperAuth.TokenIssuer
}

func NewAuthService(db *gorm.DB, issuer *helperAuth.TokenIssuer) *AuthService {
	return &AuthService{DB: db, Issuer: issuer}
}

func (s *AuthService) issue(u *userModel.UserModel) (authDTO.AuthResponse, error) {
	token, err := s.Issuer.Issue(helperAuth.Session{UserID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		log.Printf("[AUTH] token issue failed: %v", err)
		return authDTO.AuthResponse{}, fiber.NewError(fiber.StatusInternalServerError, helper.GenericServerMessage)
	}
	return authDTO.AuthResponse{User: userDTO.FromModel(u), Token: token}, nil
}

// Register creates a STUDENT account. The pre-check gives a friendly 409; the unique
// indexes still decide when two registrations race.
func (s *AuthService) Register(ctx context.Context, req *authDTO.RegisterRequest) (authDTO.AuthResponse, error) {
	taken, err := authRepo.IdentityTaken(ctx, s.DB, req.Email, req.StudentID)
	if err != nil {
		return authDTO.AuthResponse{}, helper.MapDBError(err, MsgUserExists, MsgUserNotFound)
	}
	if taken {
		return authDTO.AuthResponse{}, fiber.NewError(fiber.StatusConflict, MsgUserExists)
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AUTH] hash failed: %v", err)
		return authDTO.AuthResponse{}, fiber.NewError(fiber.StatusInternalServerError, helper.GenericServerMessage)
	}

	u := req.ToModel(hash)
	if err := authRepo.CreateUser(ctx, s.DB, u); err != nil {
		return authDTO.AuthResponse{}, helper.MapDBError(err, MsgUserExists, MsgUserNotFound)
	}
	log.Printf("[AUTH] registered user %s", u.ID)
	return s.issue(u)
}

// Login answers an unknown email and a wrong password identically.
func (s *AuthService) Login(ctx context.Context, req *authDTO.LoginRequest) (authDTO.AuthResponse, error) {
	u, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return authDTO.AuthResponse{}, helper.MapDBError(err, "", MsgInvalidCredentials)
		}
		authHelper.BurnCompare(req.Password)
		return authDTO.AuthResponse{}, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	if err := authHelper.CheckPasswordHash(u.Password, req.Password); err != nil {
		return authDTO.AuthResponse{}, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	return s.issue(u)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (userDTO.UserResponse, error) {
	u, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return userDTO.UserResponse{}, helper.MapDBError(err, "", MsgUserNotFound)
	}
	return userDTO.FromModel(u), nil
}

// ChangePassword does not revoke tokens already issued.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *authDTO.ChangePasswordRequest) error {
	u, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return helper.MapDBError(err, "", MsgUserNotFound)
	}
	if err := authHelper.CheckPasswordHash(u.Password, req.CurrentPassword); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, MsgWrongPassword)
	}

	hash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("[AUTH] hash failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, helper.GenericServerMessage)
	}
	n, err := authRepo.UpdateUserPassword(ctx, s.DB, userID, hash)
	if err != nil {
		return helper.MapDBError(err, "", MsgUserNotFound)
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
	}
	log.Printf("[AUTH] password changed for user %s", userID)
	return nil
}
