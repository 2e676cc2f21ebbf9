package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/admins/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/admins/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
	authmw "github.com/prabhatlnct2008/digipath/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tokens, err := ctl.Service.Login(req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	setTokenCookie(c, "access_token", tokens.AccessToken, configs.AccessTokenTTL)
	setTokenCookie(c, "refresh_token", tokens.RefreshToken, configs.RefreshTokenTTL)
	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req) // body is optional; cookie is the fallback
	if req.RefreshToken == "" {
		req.RefreshToken = helper.GetRefreshTokenFromCookie(c)
	}
	if req.RefreshToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Missing refresh token")
	}

	tokens, err := ctl.Service.Refresh(req.RefreshToken)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	setTokenCookie(c, "access_token", tokens.AccessToken, configs.AccessTokenTTL)
	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Missing access token")
	}
	if err := ctl.Service.Logout(raw); err != nil {
		return helper.JsonAppError(c, err)
	}

	c.ClearCookie("access_token", "refresh_token")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	adminID, err := authmw.AdminIDFromContext(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	admin, err := ctl.Service.Me(adminID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(admin)
}

func setTokenCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
