package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	galleryModel "bitsa_backend/internals/features/content/gallery/model"
	helper "bitsa_backend/internals/helpers"
)

type CreatePhotoRequest struct {
	ImageURL string  `json:"imageUrl" validate:"required,url"`
	Caption  *string `json:"caption,omitempty" validate:"omitempty,max=500"`
	EventID  *string `json:"eventId,omitempty" validate:"omitempty,uuid"`
}

func (r *CreatePhotoRequest) Normalize() {
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Caption = helper.PlainTextPtr(r.Caption)
	r.EventID = blankToNil(r.EventID)
}

// UpdatePhotoRequest: an empty caption or eventId clears the value.
type UpdatePhotoRequest struct {
	Caption *string `json:"caption,omitempty" validate:"omitempty,max=500"`
	EventID *string `json:"eventId,omitempty" validate:"omitempty,uuid|len=0"`
}

func (r *UpdatePhotoRequest) Normalize() {
	if r.Caption != nil {
		v := helper.PlainText(*r.Caption)
		r.Caption = &v
	}
	if r.EventID != nil {
		v := strings.TrimSpace(*r.EventID)
		r.EventID = &v
	}
}

func blankToNil(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// ParseEventID returns nil for an absent reference.
func ParseEventID(p *string) (*uuid.UUID, error) {
	if p == nil || *p == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*p)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type PhotoEvent struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type PhotoResponse struct {
	ID         uuid.UUID   `json:"id"`
	ImageURL   string      `json:"imageUrl"`
	Caption    *string     `json:"caption"`
	EventID    *uuid.UUID  `json:"eventId"`
	Event      *PhotoEvent `json:"event"`
	UploadedAt time.Time   `json:"uploadedAt"`
}

func FromModel(p *galleryModel.GalleryPhotoModel) PhotoResponse {
	out := PhotoResponse{
		ID:         p.ID,
		ImageURL:   p.ImageURL,
		Caption:    p.Caption,
		EventID:    p.EventID,
		UploadedAt: p.UploadedAt,
	}
	if p.Event != nil && p.Event.ID != uuid.Nil {
		out.Event = &PhotoEvent{ID: p.Event.ID, Title: p.Event.Title, Date: p.Event.Date}
	}
	return out
}

func FromModels(photos []galleryModel.GalleryPhotoModel) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, FromModel(&photos[i]))
	}
	return out
}

// EventOption is one entry of the event filter; the first entry is always "All".
type EventOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Filters struct {
	Events []EventOption `json:"events"`
	Years  []int         `json:"years"`
}
