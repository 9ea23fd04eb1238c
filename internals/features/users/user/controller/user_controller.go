package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bitsa_backend/internals/constants"
	userDTO "bitsa_backend/internals/features/users/user/dto"
	"bitsa_backend/internals/features/users/user/service"
	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

type UserController struct {
	DB      *gorm.DB
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Service: service.NewUserService(db)}
}

// GET /api/users?search=&role=&page=&limit=
// Also mounted as GET /api/admin/users.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20)
	role := strings.ToUpper(helper.QueryFilter(c, "role"))
	if role != "" && !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "role must be one of STUDENT ADMIN")
	}

	users, total, err := uc.Service.List(c.UserContext(), service.ListQuery{
		Search: c.Query("search"),
		Role:   role,
		Offset: p.Offset,
		Limit:  p.Limit,
	})
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Users fetched successfully", users, p.Pagination(total))
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id", service.MsgUserNotFound)
	if err != nil {
		return err
	}
	u, err := uc.Service.Find(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User fetched successfully", fiber.Map{
		"user": userDTO.PublicProfileFromModel(u),
	})
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgUserNotFound)
	if err != nil {
		return err
	}
	var req userDTO.UpdateProfileRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}

	u, err := uc.Service.UpdateProfile(c.UserContext(), id, sess, &req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "User profile updated successfully", fiber.Map{"user": u})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id", service.MsgUserNotFound)
	if err != nil {
		return err
	}
	if id == sess.UserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Use DELETE /users/account/delete to remove your own account")
	}
	if err := uc.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "User deleted successfully", nil)
}

// DELETE /api/users/account/delete
func (uc *UserController) DeleteOwnAccount(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	if err := uc.Service.Delete(c.UserContext(), sess.UserID); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Account deleted successfully", nil)
}
