package service

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	eventModel "bitsa_backend/internals/features/content/events/model"
	helper "bitsa_backend/internals/helpers"
)

const (
	MsgEventNotFound     = "Event not found"
	MsgAlreadyRegistered = "Already registered for this event"
)

var registrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "event_registrations_total",
		Help: "Event registration attempts by result",
	},
	[]string{"result"},
)

// RegistrationService is the registration ledger. Attendee counts are always derived
// from the ledger rows and never stored on the event.
type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// Register inserts one ledger row. Uniqueness of (user, event) is enforced by the
// uq_event_registrations_user_event index, so concurrent duplicates yield exactly one row.
func (s *RegistrationService) Register(ctx context.Context, userID, eventID uuid.UUID) (*eventModel.EventRegistrationModel, error) {
	var exists int64
	if err := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).Where("id = ?", eventID).Count(&exists).Error; err != nil {
		registrationsTotal.WithLabelValues("error").Inc()
		return nil, helper.MapDBError(err, "", MsgEventNotFound)
	}
	if exists == 0 {
		registrationsTotal.WithLabelValues("not_found").Inc()
		return nil, fiber.NewError(fiber.StatusNotFound, MsgEventNotFound)
	}

	reg := &eventModel.EventRegistrationModel{UserID: userID, EventID: eventID}
	if err := s.DB.WithContext(ctx).Create(reg).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			registrationsTotal.WithLabelValues("conflict").Inc()
			return nil, fiber.NewError(fiber.StatusConflict, MsgAlreadyRegistered)
		}
		registrationsTotal.WithLabelValues("error").Inc()
		// the event may have been deleted between the check and the insert
		return nil, helper.MapDBError(err, MsgAlreadyRegistered, MsgEventNotFound)
	}

	registrationsTotal.WithLabelValues("ok").Inc()
	log.Printf("[EVENTS] user %s registered for event %s", userID, eventID)
	return reg, nil
}

// ListForUser returns the user's registrations with their events, newest first.
func (s *RegistrationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]eventModel.EventRegistrationModel, error) {
	regs := make([]eventModel.EventRegistrationModel, 0)
	err := s.DB.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("registered_at DESC").
		Order("id DESC").
		Find(&regs).Error
	if err != nil {
		return nil, helper.MapDBError(err, "", "")
	}
	return regs, nil
}

func (s *RegistrationService) AttendeeCount(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&eventModel.EventRegistrationModel{}).
		Where("event_id = ?", eventID).
		Count(&n).Error
	return n, err
}

// AttendeeCounts computes counts for many events in one grouped query.
// Events without registrations are present with 0.
func (s *RegistrationService) AttendeeCounts(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}
	for _, id := range eventIDs {
		out[id] = 0
	}

	var rows []struct {
		EventID uuid.UUID
		N       int64
	}
	err := s.DB.WithContext(ctx).
		Model(&eventModel.EventRegistrationModel{}).
		Select("event_id, COUNT(*) AS n").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.EventID] = r.N
	}
	return out, nil
}

// Attendees lists registrations for an event with the registrant preloaded, earliest first.
func (s *RegistrationService) Attendees(ctx context.Context, eventID uuid.UUID) ([]eventModel.EventRegistrationModel, error) {
	var exists int64
	if err := s.DB.WithContext(ctx).Model(&eventModel.EventModel{}).Where("id = ?", eventID).Count(&exists).Error; err != nil {
		return nil, helper.MapDBError(err, "", MsgEventNotFound)
	}
	if exists == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgEventNotFound)
	}

	regs := make([]eventModel.EventRegistrationModel, 0)
	err := s.DB.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("registered_at ASC").
		Order("id ASC").
		Find(&regs).Error
	if err != nil {
		return nil, helper.MapDBError(err, "", MsgEventNotFound)
	}
	return regs, nil
}

func (s *RegistrationService) Total(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&eventModel.EventRegistrationModel{}).Count(&n).Error
	return n, err
}
