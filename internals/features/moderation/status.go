// Package moderation implements the approval workflow shared by blog posts and events.
package moderation

import (
	"github.com/google/uuid"

	"bitsa_backend/internals/constants"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Actor is the authenticated caller as seen by the workflow.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

// InitialStatus: admin content is published immediately, everything else waits for review.
func InitialStatus(role string) (Status, bool) {
	if role == constants.RoleAdmin {
		return StatusApproved, true
	}
	return StatusPending, false
}

// CanMutate is the single edit/delete rule for moderated content:
// admins always may; authors may only while the item is not approved.
func CanMutate(actor Actor, authorID uuid.UUID, status Status) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.UserID != uuid.Nil && actor.UserID == authorID && status != StatusApproved
}

// Subject is implemented by every moderated model.
type Subject interface {
	ModerationAuthorID() uuid.UUID
	ModerationStatus() Status
}
