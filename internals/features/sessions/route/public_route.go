package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/sessions/controller"
)

func SessionPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewPublicSessionController(db)

	sessions := public.Group("/sessions")
	sessions.Get("/upcoming", ctl.Upcoming)
	sessions.Get("/:id", ctl.Get)
	sessions.Get("/:id/calendar", ctl.Calendar)
}
