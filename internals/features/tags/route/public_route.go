package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/tags/controller"
)

func TagPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewTagController(db)

	public.Get("/tags", ctl.ListGrouped)
}
