package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	configs "github.com/prabhatlnct2008/digipath/internals/configs"
	adminModel "github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

// AuthMiddleware guards the admin API. It verifies the bearer token (header
// or cookie), rejects blacklisted tokens, and confirms the admin account
// still exists before storing admin_id and admin_role on the context.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Missing access token")
		}

		var blacklisted adminModel.TokenBlacklistModel
		err := db.Where("token = ?", raw).First(&blacklisted).Error
		if err == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Token has been revoked")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] blacklist lookup:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Invalid access token")
		}

		if typ, _ := claims["typ"].(string); typ != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Invalid access token")
		}
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Token has expired")
		}

		adminID, err := extractAdminID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Invalid access token")
		}

		var admin adminModel.AdminUserModel
		if err := db.First(&admin, "admin_user_id = ?", adminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "AUTH_ERROR", "Admin account not found")
			}
			log.Println("[ERROR] admin lookup:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}

		c.Locals("admin_id", admin.AdminUserID.String())
		c.Locals("admin_role", admin.AdminUserRole)
		return c.Next()
	}
}
