package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDTO "bitsa_backend/internals/features/content/events/dto"
	"bitsa_backend/internals/features/content/events/service"
	"bitsa_backend/internals/features/moderation"
	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

type EventController struct {
	DB      *gorm.DB
	Service *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Service: service.NewEventService(db)}
}

// GET /api/events?search=&category=&filter=all|upcoming|past&page=&limit=
func (ec *EventController) GetEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10)
	q := service.ListQuery{
		Search:   c.Query("search"),
		Category: helper.QueryFilter(c, "category"),
		Filter:   service.ParseTimeFilter(c.Query("filter")),
		Offset:   p.Offset,
		Limit:    p.Limit,
	}

	events, total, err := ec.Service.ListPublic(c.UserContext(), q)
	if err != nil {
		return err
	}
	cats, err := ec.Service.Categories(c.UserContext())
	if err != nil {
		return helper.MapDBError(err, "", "")
	}

	return helper.JsonListEx(c, "Events fetched successfully", events, p.Pagination(total), fiber.Map{
		"categories": append([]string{"All"}, cats...),
	})
}

// GET /api/events/:id
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgEventNotFound)
	if err != nil {
		return err
	}
	ev, err := ec.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Event fetched successfully", ev)
}

// POST /api/events
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	var req eventDTO.CreateEventRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	ev, err := ec.Service.Create(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}
	msg := "Event submitted for approval"
	if ev.IsAdminPost {
		msg = "Event published successfully"
	}
	return helper.JsonCreated(c, msg, ev)
}

// PUT /api/events/:id
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgEventNotFound)
	if err != nil {
		return err
	}
	var req eventDTO.UpdateEventRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	ev, err := ec.Service.Update(c.UserContext(), id, actor, &req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Event updated successfully", ev)
}

// DELETE /api/events/:id
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgEventNotFound)
	if err != nil {
		return err
	}
	if err := ec.Service.Delete(c.UserContext(), id, actor); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Event deleted successfully", nil)
}

// GET /api/events/my-events
func (ec *EventController) GetMyEvents(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 10)
	events, total, err := ec.Service.Mine(c.UserContext(), sess.UserID, p.Offset, p.Limit)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Your events fetched successfully", events, p.Pagination(total))
}

// GET /api/events/admin/pending
func (ec *EventController) GetPendingEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20)
	events, total, err := ec.Service.Pending(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Pending events fetched successfully", events, p.Pagination(total))
}

// POST /api/events/:id/approve
func (ec *EventController) ApproveEvent(c *fiber.Ctx) error {
	return ec.transition(c, moderation.StatusApproved, "Event approved successfully")
}

// POST /api/events/:id/reject
func (ec *EventController) RejectEvent(c *fiber.Ctx) error {
	return ec.transition(c, moderation.StatusRejected, "Event rejected successfully")
}

func (ec *EventController) transition(c *fiber.Ctx, to moderation.Status, msg string) error {
	actor, err := moderation.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgEventNotFound)
	if err != nil {
		return err
	}
	ev, err := ec.Service.Transition(c.UserContext(), id, actor, to)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, msg, ev)
}

// POST /api/events/:id/register
func (ec *EventController) RegisterForEvent(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgEventNotFound)
	if err != nil {
		return err
	}
	reg, err := ec.Service.Ledger.Register(c.UserContext(), sess.UserID, id)
	if err != nil {
		return err
	}
	count, err := ec.Service.Ledger.AttendeeCount(c.UserContext(), id)
	if err != nil {
		return helper.MapDBError(err, "", service.MsgEventNotFound)
	}
	return helper.JsonCreated(c, "Registered for event successfully", fiber.Map{
		"registration": fiber.Map{
			"id":           reg.ID,
			"eventId":      reg.EventID,
			"userId":       reg.UserID,
			"registeredAt": reg.RegisteredAt,
		},
		"attendeeCount": count,
	})
}

// GET /api/events/user/registrations
func (ec *EventController) GetUserRegistrations(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	regs, err := ec.Service.Registrations(c.UserContext(), sess.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User registrations fetched successfully", fiber.Map{
		"registrations": regs,
	})
}

// GET /api/events/:id/attendees
func (ec *EventController) GetEventAttendees(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgEventNotFound)
	if err != nil {
		return err
	}
	attendees, err := ec.Service.Attendees(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Event attendees fetched successfully", fiber.Map{
		"attendees":      attendees,
		"totalAttendees": len(attendees),
	})
}
