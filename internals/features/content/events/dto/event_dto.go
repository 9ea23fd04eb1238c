package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	eventModel "bitsa_backend/internals/features/content/events/model"
	"bitsa_backend/internals/features/moderation"
	userDTO "bitsa_backend/internals/features/users/user/dto"
	helper "bitsa_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date" validate:"required,isodate"`
	Time        string  `json:"time" validate:"required,hhmm"`
	EndTime     *string `json:"endTime,omitempty" validate:"omitempty,hhmm"`
	Location    string  `json:"location" validate:"required,max=200"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required,max=80"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = helper.PlainText(r.Title)
	r.Description = helper.RichText(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.EndTime = trimPtr(r.EndTime)
	r.Location = helper.PlainText(r.Location)
	r.ImageURL = trimPtr(r.ImageURL)
	r.Category = helper.PlainText(r.Category)
}

// ToModel assumes Normalize and validation ran and Date parses.
func (r *CreateEventRequest) ToModel(date time.Time, authorID uuid.UUID, status moderation.Status, isAdminPost bool) *eventModel.EventModel {
	return &eventModel.EventModel{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Time:        r.Time,
		EndTime:     r.EndTime,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		AuthorID:    authorID,
		Status:      status,
		IsAdminPost: isAdminPost,
	}
}

// UpdateEventRequest is a partial update: nil or empty fields are left unchanged,
// except endTime and imageUrl where an empty string clears the value.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" validate:"omitempty,isodate"`
	Time        *string `json:"time,omitempty" validate:"omitempty,hhmm"`
	EndTime     *string `json:"endTime,omitempty" validate:"omitempty,hhmm"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url|len=0"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=80"`
}

func (r *UpdateEventRequest) Normalize() {
	r.Title = mapPtr(r.Title, helper.PlainText)
	r.Description = mapPtr(r.Description, helper.RichText)
	r.Date = mapPtr(r.Date, strings.TrimSpace)
	r.Time = mapPtr(r.Time, strings.TrimSpace)
	r.EndTime = mapPtr(r.EndTime, strings.TrimSpace)
	r.Location = mapPtr(r.Location, helper.PlainText)
	r.ImageURL = mapPtr(r.ImageURL, strings.TrimSpace)
	r.Category = mapPtr(r.Category, helper.PlainText)
}

// Updates builds the column map. The date string must already be validated by the caller.
func (r *UpdateEventRequest) Updates(date *time.Time) map[string]any {
	m := map[string]any{}
	setIfNotEmpty(m, "title", r.Title)
	setIfNotEmpty(m, "description", r.Description)
	setIfNotEmpty(m, "time", r.Time)
	setIfNotEmpty(m, "location", r.Location)
	setIfNotEmpty(m, "category", r.Category)
	if date != nil {
		m["date"] = *date
	}
	if r.EndTime != nil {
		m["end_time"] = nilIfEmpty(*r.EndTime)
	}
	if r.ImageURL != nil {
		m["image_url"] = nilIfEmpty(*r.ImageURL)
	}
	return m
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type EventResponse struct {
	ID            uuid.UUID               `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Date          time.Time               `json:"date"`
	Time          string                  `json:"time"`
	EndTime       *string                 `json:"endTime"`
	Location      string                  `json:"location"`
	ImageURL      *string                 `json:"imageUrl"`
	Category      string                  `json:"category"`
	Status        moderation.Status       `json:"status"`
	IsAdminPost   bool                    `json:"isAdminPost"`
	AuthorID      uuid.UUID               `json:"authorId"`
	Author        *userDTO.AuthorResponse `json:"author,omitempty"`
	AttendeeCount int64                   `json:"attendeeCount"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func FromModel(e *eventModel.EventModel, attendeeCount int64) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Date:          e.Date,
		Time:          e.Time,
		EndTime:       e.EndTime,
		Location:      e.Location,
		ImageURL:      e.ImageURL,
		Category:      e.Category,
		Status:        e.Status,
		IsAdminPost:   e.IsAdminPost,
		AuthorID:      e.AuthorID,
		Author:        userDTO.AuthorFromModel(&e.Author),
		AttendeeCount: attendeeCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// FromModels pairs each event with its count; missing ids count as 0.
func FromModels(events []eventModel.EventModel, counts map[uuid.UUID]int64) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, FromModel(&events[i], counts[events[i].ID]))
	}
	return out
}

type RegistrationResponse struct {
	ID           uuid.UUID     `json:"id"`
	RegisteredAt time.Time     `json:"registeredAt"`
	EventID      uuid.UUID     `json:"eventId"`
	Event        EventResponse `json:"event"`
}

func RegistrationsFromModels(regs []eventModel.EventRegistrationModel, counts map[uuid.UUID]int64) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, RegistrationResponse{
			ID:           regs[i].ID,
			RegisteredAt: regs[i].RegisteredAt,
			EventID:      regs[i].EventID,
			Event:        FromModel(&regs[i].Event, counts[regs[i].EventID]),
		})
	}
	return out
}

type AttendeeResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	StudentID    string    `json:"studentId"`
	Course       string    `json:"course"`
	YearOfStudy  int       `json:"yearOfStudy"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func AttendeesFromModels(regs []eventModel.EventRegistrationModel) []AttendeeResponse {
	out := make([]AttendeeResponse, 0, len(regs))
	for i := range regs {
		u := regs[i].User
		out = append(out, AttendeeResponse{
			ID:           u.ID,
			FullName:     u.FullName,
			Email:        u.Email,
			StudentID:    u.StudentID,
			Course:       u.Course,
			YearOfStudy:  u.YearOfStudy,
			RegisteredAt: regs[i].RegisteredAt,
		})
	}
	return out
}

/* =======================================================
   small helpers
   ======================================================= */

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func mapPtr(p *string, f func(string) string) *string {
	if p == nil {
		return nil
	}
	v := f(*p)
	return &v
}

func setIfNotEmpty(m map[string]any, col string, p *string) {
	if p != nil && *p != "" {
		m[col] = *p
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
