package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	adminModel "github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	expiry := time.Unix(int64(exp), 0)
	if time.Now().After(expiry.Add(skew)) {
		return errors.New("token expired")
	}
	return nil
}

func extractAdminID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// AdminIDFromContext reads the admin id the middleware stored.
func AdminIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("admin_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, helper.NewAuthError("Not authenticated")
	}
	return id, nil
}

// OnlySuperAdmin restricts a route to the super_admin role. AuthMiddleware
// must run first.
func OnlySuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("admin_role").(string)
		if role != adminModel.RoleSuperAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "FORBIDDEN", "Super admin access required")
		}
		return c.Next()
	}
}
