package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	galleryDTO "bitsa_backend/internals/features/content/gallery/dto"
	"bitsa_backend/internals/features/content/gallery/service"
	helper "bitsa_backend/internals/helpers"
)

type GalleryController struct {
	DB      *gorm.DB
	Service *service.GalleryService
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db, Service: service.NewGalleryService(db)}
}

// GET /api/gallery?eventId=&year=&search=&page=&limit=
func (gc *GalleryController) GetPhotos(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 12)
	q := service.ListQuery{
		Search: c.Query("search"),
		Offset: p.Offset,
		Limit:  p.Limit,
	}
	if raw := helper.QueryFilter(c, "eventId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "eventId must be a valid id")
		}
		q.EventID = &id
	}
	if raw := helper.QueryFilter(c, "year"); raw != "" {
		y, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || y < 1 {
			return helper.JsonError(c, fiber.StatusBadRequest, "year must be a number")
		}
		q.Year = y
	}

	photos, total, err := gc.Service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	filters, err := gc.Service.Filters(c.UserContext())
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonListEx(c, "Photos fetched successfully", photos, p.Pagination(total), fiber.Map{
		"filters": filters,
	})
}

// GET /api/gallery/:id
func (gc *GalleryController) GetPhoto(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgPhotoNotFound)
	if err != nil {
		return err
	}
	photo, err := gc.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Photo fetched successfully", photo)
}

// POST /api/gallery
func (gc *GalleryController) CreatePhoto(c *fiber.Ctx) error {
	var req galleryDTO.CreatePhotoRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	photo, err := gc.Service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Photo added successfully", photo)
}

// PUT /api/gallery/:id
func (gc *GalleryController) UpdatePhoto(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgPhotoNotFound)
	if err != nil {
		return err
	}
	var req galleryDTO.UpdatePhotoRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	photo, err := gc.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Photo updated successfully", photo)
}

// DELETE /api/gallery/:id
func (gc *GalleryController) DeletePhoto(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgPhotoNotFound)
	if err != nil {
		return err
	}
	if err := gc.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Photo deleted successfully", nil)
}
