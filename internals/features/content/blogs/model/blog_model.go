package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitsa_backend/internals/features/moderation"
	userModel "bitsa_backend/internals/features/users/user/model"
)

type BlogPostModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string              `gorm:"size:200;not null" json:"title"`
	Content     string              `gorm:"type:text;not null" json:"content"`
	Excerpt     string              `gorm:"type:text;not null" json:"excerpt"`
	Thumbnail   *string             `gorm:"type:text" json:"thumbnail"`
	Category    string              `gorm:"size:80;not null;index:idx_blog_posts_category" json:"category"`
	AuthorID    uuid.UUID           `gorm:"type:uuid;not null;index:idx_blog_posts_author" json:"authorId"`
	Author      userModel.UserModel `gorm:"foreignKey:AuthorID" json:"-"`
	Status      moderation.Status   `gorm:"size:20;not null;default:PENDING;index:idx_blog_posts_status_created,priority:1" json:"status"`
	IsAdminPost bool                `gorm:"not null;default:false" json:"isAdminPost"`
	CreatedAt   time.Time           `gorm:"autoCreateTime;index:idx_blog_posts_status_created,priority:2" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}

func (b *BlogPostModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *BlogPostModel) ModerationAuthorID() uuid.UUID       { return b.AuthorID }
func (b *BlogPostModel) ModerationStatus() moderation.Status { return b.Status }
