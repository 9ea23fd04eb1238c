package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDTO "bitsa_backend/internals/features/content/events/dto"
	eventModel "bitsa_backend/internals/features/content/events/model"
	galleryModel "bitsa_backend/internals/features/content/gallery/model"
	"bitsa_backend/internals/features/moderation"
	helper "bitsa_backend/internals/helpers"
)

type TimeFilter string

const (
	FilterAll      TimeFilter = "all"
	FilterUpcoming TimeFilter = "upcoming"
	FilterPast     TimeFilter = "past"
)

func ParseTimeFilter(s string) TimeFilter {
	switch TimeFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterUpcoming:
		return FilterUpcoming
	case FilterPast:
		return FilterPast
	default:
		return FilterAll
	}
}

type ListQuery struct {
	Search   string
	Category string
	Filter   TimeFilter
	Offset   int
	Limit    int
}

type EventService struct {
	DB       *gorm.DB
	Ledger   *RegistrationService
	Workflow *moderation.Workflow[eventModel.EventModel, *eventModel.EventModel]
	Now      func() time.Time
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		DB:     db,
		Ledger: NewRegistrationService(db),
		Workflow: &moderation.Workflow[eventModel.EventModel, *eventModel.EventModel]{
			DB:       db,
			Kind:     "event",
			NotFound: MsgEventNotFound,
			Plural:   "events",
			Preload:  []string{"Author"},
		},
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// withCounts serializes events with attendee counts from one grouped ledger query.
func (s *EventService) withCounts(ctx context.Context, events []eventModel.EventModel) ([]eventDTO.EventResponse, error) {
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := s.Ledger.AttendeeCounts(ctx, ids)
	if err != nil {
		return nil, helper.MapDBError(err, "", MsgEventNotFound)
	}
	return eventDTO.FromModels(events, counts), nil
}

func (s *EventService) one(ctx context.Context, e *eventModel.EventModel) (eventDTO.EventResponse, error) {
	n, err := s.Ledger.AttendeeCount(ctx, e.ID)
	if err != nil {
		return eventDTO.EventResponse{}, helper.MapDBError(err, "", MsgEventNotFound)
	}
	return eventDTO.FromModel(e, n), nil
}

// ListPublic only ever returns APPROVED events.
func (s *EventService) ListPublic(ctx context.Context, q ListQuery) ([]eventDTO.EventResponse, int64, error) {
	base := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).
		Where("status = ?", moderation.StatusApproved)

	if q.Search != "" {
		like := helper.LikePattern(q.Search)
		base = base.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, like, like)
	}
	if q.Category != "" {
		base = base.Where("category = ?", q.Category)
	}

	order := "date DESC"
	switch q.Filter {
	case FilterUpcoming:
		base = base.Where("date >= ?", s.Now())
		order = "date ASC"
	case FilterPast:
		base = base.Where("date < ?", s.Now())
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgEventNotFound)
	}

	events := make([]eventModel.EventModel, 0)
	if err := base.Session(&gorm.Session{}).
		Preload("Author").
		Order(order).Order("created_at DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&events).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgEventNotFound)
	}

	out, err := s.withCounts(ctx, events)
	return out, total, err
}

// Categories returns the distinct categories of approved events.
func (s *EventService) Categories(ctx context.Context) ([]string, error) {
	cats := make([]string, 0)
	err := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).
		Where("status = ?", moderation.StatusApproved).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}

// Get fetches one event by id with no status filter.
func (s *EventService) Get(ctx context.Context, id uuid.UUID) (eventDTO.EventResponse, error) {
	e, err := s.Workflow.Find(ctx, id)
	if err != nil {
		return eventDTO.EventResponse{}, err
	}
	return s.one(ctx, e)
}

func (s *EventService) Create(ctx context.Context, actor moderation.Actor, req *eventDTO.CreateEventRequest) (eventDTO.EventResponse, error) {
	date, ok := helper.ParseISODate(req.Date)
	if !ok {
		return eventDTO.EventResponse{}, fiber.NewError(fiber.StatusBadRequest, "date must be an ISO 8601 date")
	}
	status, isAdminPost := moderation.InitialStatus(actor.Role)
	ev := req.ToModel(date, actor.UserID, status, isAdminPost)

	if err := s.DB.WithContext(ctx).Create(ev).Error; err != nil {
		return eventDTO.EventResponse{}, helper.MapDBError(err, "Event already exists", "Author not found")
	}
	created, err := s.Workflow.Find(ctx, ev.ID)
	if err != nil {
		return eventDTO.EventResponse{}, err
	}
	return eventDTO.FromModel(created, 0), nil
}

// Update applies a partial update. Status is never changed by an edit.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, actor moderation.Actor, req *eventDTO.UpdateEventRequest) (eventDTO.EventResponse, error) {
	if _, err := s.Workflow.Authorize(ctx, id, actor, moderation.ActionEdit); err != nil {
		return eventDTO.EventResponse{}, err
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		d, ok := helper.ParseISODate(*req.Date)
		if !ok {
			return eventDTO.EventResponse{}, fiber.NewError(fiber.StatusBadRequest, "date must be an ISO 8601 date")
		}
		date = &d
	}

	if updates := req.Updates(date); len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return eventDTO.EventResponse{}, helper.MapDBError(err, "Event already exists", MsgEventNotFound)
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the event, its ledger rows and its gallery links in one transaction.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID, actor moderation.Actor) error {
	if _, err := s.Workflow.Authorize(ctx, id, actor, moderation.ActionDelete); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return DeleteEventsTx(tx, []uuid.UUID{id})
	})
	if err != nil {
		return helper.MapDBError(err, "", MsgEventNotFound)
	}
	return nil
}

// DeleteEventsTx removes events together with their registrations and detaches their photos.
// It must be called inside a transaction.
func DeleteEventsTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("event_id IN ?", ids).Delete(&eventModel.EventRegistrationModel{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&galleryModel.GalleryPhotoModel{}).Where("event_id IN ?", ids).Update("event_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&eventModel.EventModel{}).Error
}

// Mine lists the caller's events in every status, newest first.
func (s *EventService) Mine(ctx context.Context, userID uuid.UUID, offset, limit int) ([]eventDTO.EventResponse, int64, error) {
	base := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).Where("author_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgEventNotFound)
	}
	events := make([]eventModel.EventModel, 0)
	if err := base.Session(&gorm.Session{}).
		Preload("Author").
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&events).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgEventNotFound)
	}
	out, err := s.withCounts(ctx, events)
	return out, total, err
}

func (s *EventService) Pending(ctx context.Context, offset, limit int) ([]eventDTO.EventResponse, int64, error) {
	events, total, err := s.Workflow.Pending(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.withCounts(ctx, events)
	return out, total, err
}

func (s *EventService) Transition(ctx context.Context, id uuid.UUID, actor moderation.Actor, to moderation.Status) (eventDTO.EventResponse, error) {
	e, err := s.Workflow.Transition(ctx, id, actor, to)
	if err != nil {
		return eventDTO.EventResponse{}, err
	}
	return s.one(ctx, e)
}

// Upcoming returns the next events by date in any status, for the admin dashboard.
func (s *EventService) Upcoming(ctx context.Context, limit int) ([]eventDTO.EventResponse, error) {
	events := make([]eventModel.EventModel, 0)
	if err := s.DB.WithContext(ctx).
		Preload("Author").
		Where("date >= ?", s.Now()).
		Order("date ASC").Order("id ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, helper.MapDBError(err, "", MsgEventNotFound)
	}
	return s.withCounts(ctx, events)
}

// Attendees returns the attendee list for an event (admin view).
func (s *EventService) Attendees(ctx context.Context, id uuid.UUID) ([]eventDTO.AttendeeResponse, error) {
	regs, err := s.Ledger.Attendees(ctx, id)
	if err != nil {
		return nil, err
	}
	return eventDTO.AttendeesFromModels(regs), nil
}

// Registrations returns the caller's registrations with event data, newest first.
func (s *EventService) Registrations(ctx context.Context, userID uuid.UUID) ([]eventDTO.RegistrationResponse, error) {
	regs, err := s.Ledger.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.EventID)
	}
	counts, err := s.Ledger.AttendeeCounts(ctx, ids)
	if err != nil {
		return nil, helper.MapDBError(err, "", MsgEventNotFound)
	}
	return eventDTO.RegistrationsFromModels(regs, counts), nil
}
