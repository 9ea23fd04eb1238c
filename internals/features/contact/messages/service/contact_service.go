package service

import (
	"context"

	"gorm.io/gorm"

	contactModel "bitsa_backend/internals/features/contact/messages/model"
)

const MsgMessageNotFound = "Message not found"

func UnreadCount(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&contactModel.ContactMessageModel{}).Where("is_read = ?", false).Count(&n).Error
	return n, err
}

// Recent returns the newest messages regardless of read state.
func Recent(ctx context.Context, db *gorm.DB, limit int) ([]contactModel.ContactMessageModel, error) {
	msgs := make([]contactModel.ContactMessageModel, 0, limit)
	err := db.WithContext(ctx).
		Order("sent_at DESC").Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
