package moderation

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bitsa_backend/internals/helpers"
)

type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Workflow applies the moderation rules to one content table.
// PT is the pointer type of the model so lookups can return the concrete row.
type Workflow[T any, PT interface {
	*T
	Subject
}] struct {
	DB *gorm.DB
	// Kind labels metrics and logs, e.g. "blog".
	Kind string
	// NotFound is the 404 message, e.g. "Blog post not found".
	NotFound string
	// Plural names the content in 403 messages, e.g. "blog posts".
	Plural string
	// Preload lists associations loaded with each row.
	Preload []string
}

func (w *Workflow[T, PT]) query(ctx context.Context) *gorm.DB {
	q := w.DB.WithContext(ctx)
	for _, p := range w.Preload {
		q = q.Preload(p)
	}
	return q
}

// Find loads one row by id regardless of status.
func (w *Workflow[T, PT]) Find(ctx context.Context, id uuid.UUID) (PT, error) {
	var item T
	if err := w.query(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, w.NotFound)
		}
		return nil, helper.MapDBError(err, "", w.NotFound)
	}
	return PT(&item), nil
}

// Authorize loads the row and applies CanMutate. Existence is checked first so a
// missing id is always 404, never 403.
func (w *Workflow[T, PT]) Authorize(ctx context.Context, id uuid.UUID, actor Actor, action Action) (PT, error) {
	item, err := w.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if CanMutate(actor, item.ModerationAuthorID(), item.ModerationStatus()) {
		return item, nil
	}
	if actor.UserID != item.ModerationAuthorID() {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only "+string(action)+" your own "+w.Plural)
	}
	return nil, fiber.NewError(fiber.StatusForbidden, "Cannot "+string(action)+" approved "+w.Plural)
}

// Transition sets the status in a single UPDATE and returns the reloaded row.
// Any state may move to APPROVED or REJECTED; only admins may transition.
func (w *Workflow[T, PT]) Transition(ctx context.Context, id uuid.UUID, actor Actor, to Status) (PT, error) {
	if !actor.IsAdmin() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Admin access required")
	}
	if to != StatusApproved && to != StatusRejected {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid status transition")
	}

	var zero T
	res := w.DB.WithContext(ctx).Model(&zero).Where("id = ?", id).Update("status", to)
	if res.Error != nil {
		return nil, helper.MapDBError(res.Error, "", w.NotFound)
	}
	if res.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, w.NotFound)
	}

	transitionsTotal.WithLabelValues(w.Kind, string(to)).Inc()
	log.Printf("[MODERATION] %s %s -> %s by %s", w.Kind, id, to, actor.UserID)
	return w.Find(ctx, id)
}

// Pending returns the review queue, oldest submission first.
func (w *Workflow[T, PT]) Pending(ctx context.Context, offset, limit int) ([]T, int64, error) {
	var zero T
	var total int64
	if err := w.DB.WithContext(ctx).Model(&zero).Where("status = ?", StatusPending).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", w.NotFound)
	}

	items := make([]T, 0)
	q := w.query(ctx).
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Order("id ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", w.NotFound)
	}
	return items, total, nil
}

// CountByStatus counts rows in the given state.
func (w *Workflow[T, PT]) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var zero T
	var n int64
	err := w.DB.WithContext(ctx).Model(&zero).Where("status = ?", status).Count(&n).Error
	return n, err
}
