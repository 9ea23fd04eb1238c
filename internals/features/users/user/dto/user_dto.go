package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "bitsa_backend/internals/features/users/user/model"
	helper "bitsa_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateProfileRequest only carries the mutable profile fields.
// Identity fields (email, studentId, course, yearOfStudy, role) are not accepted.
type UpdateProfileRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=1,max=120"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.FullName != nil {
		v := helper.PlainText(*r.FullName)
		r.FullName = &v
	}
	if r.PhoneNumber != nil {
		v := strings.TrimSpace(*r.PhoneNumber)
		r.PhoneNumber = &v
	}
	if r.Bio != nil {
		v := helper.PlainText(*r.Bio)
		r.Bio = &v
	}
}

// Updates returns the column map for a partial update. Empty phone/bio clear the column.
func (r *UpdateProfileRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.FullName != nil && *r.FullName != "" {
		m["full_name"] = *r.FullName
	}
	if r.PhoneNumber != nil {
		m["phone_number"] = nilIfEmpty(*r.PhoneNumber)
	}
	if r.Bio != nil {
		m["bio"] = nilIfEmpty(*r.Bio)
	}
	return m
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse is the caller's own profile (and what admins see).
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	StudentID   string    `json:"studentId"`
	Course      string    `json:"course"`
	YearOfStudy int       `json:"yearOfStudy"`
	PhoneNumber *string   `json:"phoneNumber"`
	Bio         *string   `json:"bio"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromModel(u *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		StudentID:   u.StudentID,
		Course:      u.Course,
		YearOfStudy: u.YearOfStudy,
		PhoneNumber: u.PhoneNumber,
		Bio:         u.Bio,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

func FromModels(users []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}

// PublicProfileResponse is what other members see; contact details stay private.
type PublicProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	StudentID   string    `json:"studentId"`
	Course      string    `json:"course"`
	YearOfStudy int       `json:"yearOfStudy"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func PublicProfileFromModel(u *uModel.UserModel) PublicProfileResponse {
	return PublicProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		StudentID:   u.StudentID,
		Course:      u.Course,
		YearOfStudy: u.YearOfStudy,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

// AuthorResponse is the author summary embedded in blog posts and events.
type AuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email,omitempty"`
}

func AuthorFromModel(u *uModel.UserModel) *AuthorResponse {
	if u == nil || u.ID == uuid.Nil {
		return nil
	}
	return &AuthorResponse{ID: u.ID, FullName: u.FullName, Email: u.Email}
}
