package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "bitsa_backend/internals/features/users/auth/dto"
	"bitsa_backend/internals/features/users/auth/service"
	helper "bitsa_backend/internals/helpers"
	helperAuth "bitsa_backend/internals/helpers/auth"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB, issuer *helperAuth.TokenIssuer) *AuthController {
	return &AuthController{DB: db, Service: service.NewAuthService(db, issuer)}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	res, err := ac.Service.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "User registered successfully", res)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	res, err := ac.Service.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login successful", res)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	user, err := ac.Service.Me(c.UserContext(), sess.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User fetched successfully", fiber.Map{"user": user})
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSession(c)
	if err != nil {
		return err
	}
	var req authDTO.ChangePasswordRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	if err := ac.Service.ChangePassword(c.UserContext(), sess.UserID, &req); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
