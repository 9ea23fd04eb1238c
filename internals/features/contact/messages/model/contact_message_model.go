package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:120;not null" json:"name"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Subject string    `gorm:"size:200;not null" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`
	IsRead  bool      `gorm:"not null;default:false;index:idx_contact_messages_is_read" json:"isRead"`
	SentAt  time.Time `gorm:"autoCreateTime;index:idx_contact_messages_sent_at" json:"sentAt"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
