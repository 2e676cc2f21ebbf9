package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/recordings/controller"
)

func RecordingPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewPublicRecordingController(db)

	recordings := public.Group("/recordings")
	recordings.Get("/", ctl.List)
	recordings.Get("/:id", ctl.Get)
}
