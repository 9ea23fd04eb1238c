package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "bitsa_backend/internals/features/users/user/model"
)

// EventRegistrationModel is one row of the registration ledger.
// (user_id, event_id) is unique at the database level.
type EventRegistrationModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_event_registrations_user_event,priority:1" json:"userId"`
	EventID      uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_event_registrations_user_event,priority:2;index:idx_event_registrations_event" json:"eventId"`
	RegisteredAt time.Time           `gorm:"autoCreateTime" json:"registeredAt"`
	User         userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`
	Event        EventModel          `gorm:"foreignKey:EventID" json:"-"`
}

func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}

func (r *EventRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
