package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/recordings/controller"
)

func RecordingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewRecordingController(db)

	recordings := admin.Group("/recordings")
	recordings.Get("/", ctl.List)
	recordings.Post("/", ctl.Create)
	recordings.Put("/:id", ctl.Update)
	recordings.Delete("/:id", ctl.Delete)
}
