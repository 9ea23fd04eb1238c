package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitsa_backend/internals/features/moderation"
	userModel "bitsa_backend/internals/features/users/user/model"
)

type EventModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string              `gorm:"size:200;not null" json:"title"`
	Description string              `gorm:"type:text;not null" json:"description"`
	Date        time.Time           `gorm:"not null;index:idx_events_date" json:"date"`
	Time        string              `gorm:"size:5;not null" json:"time"`
	EndTime     *string             `gorm:"size:5" json:"endTime"`
	Location    string              `gorm:"size:200;not null" json:"location"`
	ImageURL    *string             `gorm:"type:text" json:"imageUrl"`
	Category    string              `gorm:"size:80;not null;index:idx_events_category" json:"category"`
	AuthorID    uuid.UUID           `gorm:"type:uuid;not null;index:idx_events_author" json:"authorId"`
	Author      userModel.UserModel `gorm:"foreignKey:AuthorID" json:"-"`
	Status      moderation.Status   `gorm:"size:20;not null;default:PENDING;index:idx_events_status_created,priority:1" json:"status"`
	IsAdminPost bool                `gorm:"not null;default:false" json:"isAdminPost"`
	CreatedAt   time.Time           `gorm:"autoCreateTime;index:idx_events_status_created,priority:2" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *EventModel) ModerationAuthorID() uuid.UUID       { return e.AuthorID }
func (e *EventModel) ModerationStatus() moderation.Status { return e.Status }
