package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blogDTO "bitsa_backend/internals/features/content/blogs/dto"
	"bitsa_backend/internals/features/content/blogs/service"
	"bitsa_backend/internals/features/moderation"
	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

type BlogController struct {
	DB      *gorm.DB
	Service *service.BlogService
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db, Service: service.NewBlogService(db)}
}

// GET /api/blogs?search=&category=&page=&limit=
func (bc *BlogController) GetBlogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10)
	blogs, total, err := bc.Service.ListPublic(c.UserContext(), service.ListQuery{
		Search:   c.Query("search"),
		Category: helper.QueryFilter(c, "category"),
		Offset:   p.Offset,
		Limit:    p.Limit,
	})
	if err != nil {
		return err
	}
	cats, err := bc.Service.Categories(c.UserContext())
	if err != nil {
		return helper.MapDBError(err, "", "")
	}

	return helper.JsonListEx(c, "Blogs fetched successfully", blogs, p.Pagination(total), fiber.Map{
		"categories": append([]string{"All"}, cats...),
	})
}

// GET /api/blogs/:id
func (bc *BlogController) GetBlog(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgBlogNotFound)
	if err != nil {
		return err
	}
	b, err := bc.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Blog fetched successfully", b)
}

// POST /api/blogs
func (bc *BlogController) CreateBlog(c *fiber.Ctx) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	var req blogDTO.CreateBlogRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	b, err := bc.Service.Create(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	msg := "Blog submitted for approval"
	if b.IsAdminPost {
		msg = "Blog published successfully"
	}
	return helper.JsonCreated(c, msg, b)
}

// PUT /api/blogs/:id
func (bc *BlogController) UpdateBlog(c *fiber.Ctx) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgBlogNotFound)
	if err != nil {
		return err
	}
	var req blogDTO.UpdateBlogRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	b, err := bc.Service.Update(c.UserContext(), id, actor, &req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Blog updated successfully", b)
}

// DELETE /api/blogs/:id
func (bc *BlogController) DeleteBlog(c *fiber.Ctx) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgBlogNotFound)
	if err != nil {
		return err
	}
	if err := bc.Service.Delete(c.UserContext(), id, actor); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Blog deleted successfully", nil)
}

// GET /api/blogs/my-blogs
func (bc *BlogController) GetMyBlogs(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 10)
	blogs, total, err := bc.Service.Mine(c.UserContext(), sess.UserID, p.Offset, p.Limit)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Your blogs fetched successfully", blogs, p.Pagination(total))
}

// GET /api/blogs/admin/pending
func (bc *BlogController) GetPendingBlogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20)
	blogs, total, err := bc.Service.Pending(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Pending blogs fetched successfully", blogs, p.Pagination(total))
}

// POST /api/blogs/:id/approve
func (bc *BlogController) ApproveBlog(c *fiber.Ctx) error {
	return bc.transition(c, moderation.StatusApproved, "Blog approved successfully")
}

// POST /api/blogs/:id/reject
func (bc *BlogController) RejectBlog(c *fiber.Ctx) error {
	return bc.transition(c, moderation.StatusRejected, "Blog rejected successfully")
}

func (bc *BlogController) transition(c *fiber.Ctx, to moderation.Status, msg string) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgBlogNotFound)
	if err != nil {
		return err
	}
	b, err := bc.Service.Transition(c.UserContext(), id, actor, to)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, msg, b)
}
