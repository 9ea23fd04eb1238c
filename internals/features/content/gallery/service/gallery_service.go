package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "bitsa_backend/internals/features/content/events/model"
	galleryDTO "bitsa_backend/internals/features/content/gallery/dto"
	galleryModel "bitsa_backend/internals/features/content/gallery/model"
	"bitsa_backend/internals/features/moderation"
	helper "bitsa_backend/internals/helpers"
)

const (
	MsgPhotoNotFound = "Photo not found"
	MsgEventNotFound = "Event not found"
)

type ListQuery struct {
	EventID *uuid.UUID
	Year    int
	Search  string
	Offset  int
	Limit   int
}

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

// yearRange returns [Jan 1 year, Jan 1 year+1) in UTC so the filter stays portable across drivers.
func yearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

func (s *GalleryService) List(ctx context.Context, q ListQuery) ([]galleryDTO.PhotoResponse, int64, error) {
	base := s.DB.WithContext(ctx).Model(&galleryModel.GalleryPhotoModel{})
	if q.EventID != nil {
		base = base.Where("event_id = ?", *q.EventID)
	}
	if q.Year > 0 {
		from, to := yearRange(q.Year)
		base = base.Where("uploaded_at >= ? AND uploaded_at < ?", from, to)
	}
	if q.Search != "" {
		base = base.Where(`LOWER(COALESCE(caption, '')) LIKE ? ESCAPE '\'`, helper.LikePattern(q.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgPhotoNotFound)
	}
	photos := make([]galleryModel.GalleryPhotoModel, 0)
	if err := base.Session(&gorm.Session{}).
		Preload("Event").
		Order("uploaded_at DESC").Order("id DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&photos).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgPhotoNotFound)
	}
	return galleryDTO.FromModels(photos), total, nil
}

// Filters lists approved events for the event picker and the distinct upload years, newest first.
func (s *GalleryService) Filters(ctx context.Context) (galleryDTO.Filters, error) {
	events := make([]eventModel.EventModel, 0)
	if err := s.DB.WithContext(ctx).
		Select("id", "title").
		Where("status = ?", moderation.StatusApproved).
		Order("date DESC").
		Find(&events).Error; err != nil {
		return galleryDTO.Filters{}, err
	}
	opts := make([]galleryDTO.EventOption, 0, len(events)+1)
	opts = append(opts, galleryDTO.EventOption{ID: "All", Title: "All Events"})
	for _, e := range events {
		opts = append(opts, galleryDTO.EventOption{ID: e.ID.String(), Title: e.Title})
	}

	// Years are folded in Go; EXTRACT/strftime differ between postgres and sqlite.
	var stamps []time.Time
	if err := s.DB.WithContext(ctx).Model(&galleryModel.GalleryPhotoModel{}).
		Pluck("uploaded_at", &stamps).Error; err != nil {
		return galleryDTO.Filters{}, err
	}
	seen := map[int]struct{}{}
	years := make([]int, 0)
	for _, t := range stamps {
		y := t.UTC().Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return galleryDTO.Filters{Events: opts, Years: years}, nil
}

func (s *GalleryService) find(ctx context.Context, id uuid.UUID) (*galleryModel.GalleryPhotoModel, error) {
	var p galleryModel.GalleryPhotoModel
	if err := s.DB.WithContext(ctx).Preload("Event").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, MsgPhotoNotFound)
		}
		return nil, helper.MapDBError(err, "", MsgPhotoNotFound)
	}
	return &p, nil
}

func (s *GalleryService) Get(ctx context.Context, id uuid.UUID) (galleryDTO.PhotoResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return galleryDTO.PhotoResponse{}, err
	}
	return galleryDTO.FromModel(p), nil
}

func (s *GalleryService) ensureEvent(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).Where("id = ?", *id).Count(&n).Error; err != nil {
		return helper.MapDBError(err, "", MsgEventNotFound)
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, MsgEventNotFound)
	}
	return nil
}

func (s *GalleryService) Create(ctx context.Context, req *galleryDTO.CreatePhotoRequest) (galleryDTO.PhotoResponse, error) {
	eventID, err := galleryDTO.ParseEventID(req.EventID)
	if err != nil {
		return galleryDTO.PhotoResponse{}, fiber.NewError(fiber.StatusNotFound, MsgEventNotFound)
	}
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return galleryDTO.PhotoResponse{}, err
	}

	p := &galleryModel.GalleryPhotoModel{ImageURL: req.ImageURL, Caption: req.Caption, EventID: eventID}
	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		return galleryDTO.PhotoResponse{}, helper.MapDBError(err, "Photo already exists", MsgEventNotFound)
	}
	return s.Get(ctx, p.ID)
}

func (s *GalleryService) Update(ctx context.Context, id uuid.UUID, req *galleryDTO.UpdatePhotoRequest) (galleryDTO.PhotoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return galleryDTO.PhotoResponse{}, err
	}

	updates := map[string]any{}
	if req.Caption != nil {
		if *req.Caption == "" {
			updates["caption"] = nil
		} else {
			updates["caption"] = *req.Caption
		}
	}
	if req.EventID != nil {
		eventID, err := galleryDTO.ParseEventID(req.EventID)
		if err != nil {
			return galleryDTO.PhotoResponse{}, fiber.NewError(fiber.StatusNotFound, MsgEventNotFound)
		}
		if err := s.ensureEvent(ctx, eventID); err != nil {
			return galleryDTO.PhotoResponse{}, err
		}
		if eventID == nil {
			updates["event_id"] = nil
		} else {
			updates["event_id"] = *eventID
		}
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&galleryModel.GalleryPhotoModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return galleryDTO.PhotoResponse{}, helper.MapDBError(err, "", MsgPhotoNotFound)
		}
	}
	return s.Get(ctx, id)
}

func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&galleryModel.GalleryPhotoModel{})
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", MsgPhotoNotFound)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, MsgPhotoNotFound)
	}
	return nil
}

func (s *GalleryService) Total(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&galleryModel.GalleryPhotoModel{}).Count(&n).Error
	return n, err
}
