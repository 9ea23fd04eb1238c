package dto

import (
	"time"

	"github.com/google/uuid"

	contactModel "bitsa_backend/internals/features/contact/messages/model"
	eventDTO "bitsa_backend/internals/features/content/events/dto"
)

type Totals struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalBlogs         int64 `json:"totalBlogs"`
	TotalEvents        int64 `json:"totalEvents"`
	TotalPhotos        int64 `json:"totalPhotos"`
	TotalRegistrations int64 `json:"totalRegistrations"`
	PendingBlogs       int64 `json:"pendingBlogs"`
	PendingEvents      int64 `json:"pendingEvents"`
	UnreadMessages     int64 `json:"unreadMessages"`
}

type RecentMessage struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	SentAt  time.Time `json:"sentAt"`
	IsRead  bool      `json:"isRead"`
}

func RecentMessagesFromModels(msgs []contactModel.ContactMessageModel) []RecentMessage {
	out := make([]RecentMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, RecentMessage{
			ID:      m.ID,
			Name:    m.Name,
			Email:   m.Email,
			Subject: m.Subject,
			SentAt:  m.SentAt,
			IsRead:  m.IsRead,
		})
	}
	return out
}

type DashboardResponse struct {
	Stats          Totals                   `json:"stats"`
	RecentMessages []RecentMessage          `json:"recentMessages"`
	UpcomingEvents []eventDTO.EventResponse `json:"upcomingEvents"`
}
