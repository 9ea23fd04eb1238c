package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	"bitsa_backend/internals/features/content/blogs/controller"
	authMiddleware "bitsa_backend/internals/middlewares/auth"
)

// BlogRoutes mounts /blogs.
func BlogRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctrl := controller.NewBlogController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("blogs"), constants.AdminOnly...)

	blogs := r.Group("/blogs")

	// 🔓 Public
	blogs.Get("/", ctrl.GetBlogs)

	// 🔐 Static paths before /:id
	blogs.Get("/my-blogs", protect, ctrl.GetMyBlogs)
	blogs.Get("/admin/pending", protect, adminOnly, ctrl.GetPendingBlogs)

	blogs.Get("/:id", ctrl.GetBlog)
	blogs.Post("/", protect, ctrl.CreateBlog)
	blogs.Put("/:id", protect, ctrl.UpdateBlog)
	blogs.Delete("/:id", protect, ctrl.DeleteBlog)

	// 🛡️ Moderation
	blogs.Post("/:id/approve", protect, adminOnly, ctrl.ApproveBlog)
	blogs.Post("/:id/reject", protect, adminOnly, ctrl.RejectBlog)
}
