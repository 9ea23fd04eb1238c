package database

import (
	"log"

	"gorm.io/gorm"

	contactModel "bitsa_backend/internals/features/contact/messages/model"
	blogModel "bitsa_backend/internals/features/content/blogs/model"
	eventModel "bitsa_backend/internals/features/content/events/model"
	galleryModel "bitsa_backend/internals/features/content/gallery/model"
	userModel "bitsa_backend/internals/features/users/user/model"
)

// Models lists every table owned by the service, parents before children.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&blogModel.BlogPostModel{},
		&eventModel.EventModel{},
		&eventModel.EventRegistrationModel{},
		&galleryModel.GalleryPhotoModel{},
		&contactModel.ContactMessageModel{},
	}
}

// AutoMigrate creates or extends the schema, including the unique index that
// guarantees one registration per (user, event).
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("✅ Schema migrated")
	return nil
}
