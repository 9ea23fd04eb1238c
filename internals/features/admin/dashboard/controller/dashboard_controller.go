package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardDTO "bitsa_backend/internals/features/admin/dashboard/dto"
	contactService "bitsa_backend/internals/features/contact/messages/service"
	blogModel "bitsa_backend/internals/features/content/blogs/model"
	blogService "bitsa_backend/internals/features/content/blogs/service"
	eventModel "bitsa_backend/internals/features/content/events/model"
	eventService "bitsa_backend/internals/features/content/events/service"
	galleryService "bitsa_backend/internals/features/content/gallery/service"
	"bitsa_backend/internals/features/moderation"
	userService "bitsa_backend/internals/features/users/user/service"
	helper "bitsa_backend/internals/helpers"
)

const (
	recentMessagesLimit = 5
	upcomingEventsLimit = 5
)

type DashboardController struct {
	DB      *gorm.DB
	Blogs   *blogService.BlogService
	Events  *eventService.EventService
	Gallery *galleryService.GalleryService
	Users   *userService.UserService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:      db,
		Blogs:   blogService.NewBlogService(db),
		Events:  eventService.NewEventService(db),
		Gallery: galleryService.NewGalleryService(db),
		Users:   userService.NewUserService(db),
	}
}

func (dc *DashboardController) totals(c *fiber.Ctx) (dashboardDTO.Totals, error) {
	ctx := c.UserContext()
	var t dashboardDTO.Totals
	var err error

	if t.TotalUsers, err = dc.Users.Total(ctx); err != nil {
		return t, err
	}
	if err = dc.DB.WithContext(ctx).Model(&blogModel.BlogPostModel{}).Count(&t.TotalBlogs).Error; err != nil {
		return t, err
	}
	if err = dc.DB.WithContext(ctx).Model(&eventModel.EventModel{}).Count(&t.TotalEvents).Error; err != nil {
		return t, err
	}
	if t.TotalPhotos, err = dc.Gallery.Total(ctx); err != nil {
		return t, err
	}
	if t.TotalRegistrations, err = dc.Events.Ledger.Total(ctx); err != nil {
		return t, err
	}
	if t.PendingBlogs, err = dc.Blogs.Workflow.CountByStatus(ctx, moderation.StatusPending); err != nil {
		return t, err
	}
	if t.PendingEvents, err = dc.Events.Workflow.CountByStatus(ctx, moderation.StatusPending); err != nil {
		return t, err
	}
	if t.UnreadMessages, err = contactService.UnreadCount(ctx, dc.DB); err != nil {
		return t, err
	}
	return t, nil
}

// GET /api/admin/stats
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	totals, err := dc.totals(c)
	if err != nil {
		log.Printf("[ADMIN] dashboard totals failed: %v", err)
		return helper.MapDBError(err, "", "")
	}

	msgs, err := contactService.Recent(c.UserContext(), dc.DB, recentMessagesLimit)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	upcoming, err := dc.Events.Upcoming(c.UserContext(), upcomingEventsLimit)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Dashboard statistics fetched successfully", dashboardDTO.DashboardResponse{
		Stats:          totals,
		RecentMessages: dashboardDTO.RecentMessagesFromModels(msgs),
		UpcomingEvents: upcoming,
	})
}
