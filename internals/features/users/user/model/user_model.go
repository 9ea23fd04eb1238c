package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	FullName    string    `gorm:"size:120;not null" json:"fullName"`
	StudentID   string    `gorm:"size:50;not null;uniqueIndex:uq_users_student_id" json:"studentId"`
	Course      string    `gorm:"size:120;not null" json:"course"`
	YearOfStudy int       `gorm:"not null" json:"yearOfStudy"`
	PhoneNumber *string   `gorm:"size:30" json:"phoneNumber"`
	Bio         *string   `gorm:"type:text" json:"bio"`
	Role        string    `gorm:"size:20;not null;default:STUDENT;index" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	return nil
}

func (u *UserModel) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}
