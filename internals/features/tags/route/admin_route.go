package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/tags/controller"
)

func TagAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewTagController(db)

	tags := admin.Group("/tags")
	tags.Get("/", ctl.List)
	tags.Post("/", ctl.Create)
	tags.Get("/:id", ctl.Get)
	tags.Put("/:id", ctl.Update)
	tags.Get("/:id/usage", ctl.Usage)
	tags.Delete("/:id", ctl.Delete)
}
