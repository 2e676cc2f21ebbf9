package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/admins/controller"
	"github.com/prabhatlnct2008/digipath/internals/middlewares"
	authmw "github.com/prabhatlnct2008/digipath/internals/middlewares/auth"
)

// AuthRoutes mounts /auth under the given router. Login carries its own
// stricter rate limit; /me requires a valid token.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh", ctl.Refresh)
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me", authmw.AuthMiddleware(db), ctl.Me)
}
