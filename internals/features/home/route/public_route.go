package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/home/controller"
)

func HomePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewHomeController(db)

	public.Get("/home", ctl.Home)
}
