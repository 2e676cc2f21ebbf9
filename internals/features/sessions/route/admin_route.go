package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/sessions/controller"
)

func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSessionController(db)

	sessions := admin.Group("/sessions")
	sessions.Get("/", ctl.List)
	sessions.Post("/", ctl.Create)
	// Static segments must register before /:id.
	sessions.Get("/upcoming", ctl.Upcoming)
	sessions.Get("/past", ctl.Past)
	sessions.Get("/:id", ctl.Get)
	sessions.Put("/:id", ctl.Update)
	sessions.Delete("/:id", ctl.Delete)
	sessions.Post("/:id/publish", ctl.Publish)
	sessions.Post("/:id/unpublish", ctl.Unpublish)
	sessions.Post("/:id/complete", ctl.Complete)
}
