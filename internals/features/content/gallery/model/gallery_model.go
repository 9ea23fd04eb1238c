package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "bitsa_backend/internals/features/content/events/model"
)

type GalleryPhotoModel struct {
	ID         uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL   string                 `gorm:"type:text;not null" json:"imageUrl"`
	Caption    *string                `gorm:"type:text" json:"caption"`
	EventID    *uuid.UUID             `gorm:"type:uuid;index:idx_gallery_photos_event" json:"eventId"`
	Event      *eventModel.EventModel `gorm:"foreignKey:EventID" json:"-"`
	UploadedAt time.Time              `gorm:"autoCreateTime;index:idx_gallery_photos_uploaded" json:"uploadedAt"`
}

func (GalleryPhotoModel) TableName() string {
	return "gallery_photos"
}

func (g *GalleryPhotoModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
