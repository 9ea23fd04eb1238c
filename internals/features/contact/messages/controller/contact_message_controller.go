package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactDTO "bitsa_backend/internals/features/contact/messages/dto"
	contactModel "bitsa_backend/internals/features/contact/messages/model"
	"bitsa_backend/internals/features/contact/messages/service"
	helper "bitsa_backend/internals/helpers"
)

type ContactMessageController struct {
	DB *gorm.DB
}

func NewContactMessageController(db *gorm.DB) *ContactMessageController {
	return &ContactMessageController{DB: db}
}

// POST /api/contact
func (cc *ContactMessageController) SubmitMessage(c *fiber.Ctx) error {
	var req contactDTO.CreateContactMessageRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	msg := req.ToModel()
	if err := cc.DB.WithContext(c.UserContext()).Create(msg).Error; err != nil {
		return helper.MapDBError(err, "Message already sent", service.MsgMessageNotFound)
	}
	log.Printf("[CONTACT] message %s received", msg.ID)
	return helper.JsonCreated(c, "Message sent successfully", msg)
}

// GET /api/contact?isRead=true|false&page=&limit=
func (cc *ContactMessageController) GetMessages(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20)
	ctx := c.UserContext()

	base := cc.DB.WithContext(ctx).Model(&contactModel.ContactMessageModel{})
	if raw := helper.QueryFilter(c, "isRead"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "isRead must be true or false")
		}
		base = base.Where("is_read = ?", isRead)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.MapDBError(err, "", service.MsgMessageNotFound)
	}
	msgs := make([]contactModel.ContactMessageModel, 0)
	if err := base.Session(&gorm.Session{}).
		Order("sent_at DESC").Order("id DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&msgs).Error; err != nil {
		return helper.MapDBError(err, "", service.MsgMessageNotFound)
	}
	unread, err := service.UnreadCount(ctx, cc.DB)
	if err != nil {
		return helper.MapDBError(err, "", service.MsgMessageNotFound)
	}

	return helper.JsonListEx(c, "Messages fetched successfully", msgs, p.Pagination(total), fiber.Map{
		"unreadCount": unread,
	})
}

// PATCH /api/contact/:id/read
func (cc *ContactMessageController) MarkAsRead(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgMessageNotFound)
	if err != nil {
		return err
	}
	ctx := c.UserContext()

	res := cc.DB.WithContext(ctx).Model(&contactModel.ContactMessageModel{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", service.MsgMessageNotFound)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgMessageNotFound)
	}

	var msg contactModel.ContactMessageModel
	if err := cc.DB.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, "", service.MsgMessageNotFound)
	}
	return helper.JsonUpdated(c, "Message marked as read", msg)
}

// DELETE /api/contact/:id
func (cc *ContactMessageController) DeleteMessage(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgMessageNotFound)
	if err != nil {
		return err
	}
	res := cc.DB.WithContext(c.UserContext()).Where("id = ?", id).Delete(&contactModel.ContactMessageModel{})
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", service.MsgMessageNotFound)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgMessageNotFound)
	}
	return helper.JsonDeleted(c, "Message deleted successfully", nil)
}
