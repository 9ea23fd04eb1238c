package dto

import (
	"strings"

	"bitsa_backend/internals/constants"
	userDTO "bitsa_backend/internals/features/users/user/dto"
	userModel "bitsa_backend/internals/features/users/user/model"
	helper "bitsa_backend/internals/helpers"
)

type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	StudentID   string `json:"studentId" validate:"required,max=50"`
	Course      string `json:"course" validate:"required,max=120"`
	YearOfStudy int    `json:"yearOfStudy" validate:"required,min=1,max=4"`
}

func (r *RegisterRequest) Normalize() {
	r.FullName = helper.PlainText(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.Course = helper.PlainText(r.Course)
}

// ToModel builds a STUDENT account; the role is never taken from the request.
func (r *RegisterRequest) ToModel(passwordHash string) *userModel.UserModel {
	return &userModel.UserModel{
		Email:       r.Email,
		Password:    passwordHash,
		FullName:    r.FullName,
		StudentID:   r.StudentID,
		Course:      r.Course,
		YearOfStudy: r.YearOfStudy,
		Role:        constants.RoleStudent,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

type AuthResponse struct {
	User  userDTO.UserResponse `json:"user"`
	Token string               `json:"token"`
}
