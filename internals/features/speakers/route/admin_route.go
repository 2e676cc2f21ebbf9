package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/speakers/controller"
)

func SpeakerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSpeakerController(db)

	speakers := admin.Group("/speakers")
	speakers.Get("/", ctl.List)
	speakers.Post("/", ctl.Create)
	speakers.Get("/:id", ctl.Get)
	speakers.Put("/:id", ctl.Update)
	speakers.Get("/:id/usage", ctl.Usage)
	speakers.Delete("/:id", ctl.Delete)
}
