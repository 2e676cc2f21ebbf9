package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "github.com/prabhatlnct2008/digipath/internals/features/admins/route"
	homeRoute "github.com/prabhatlnct2008/digipath/internals/features/home/route"
	recordingRoute "github.com/prabhatlnct2008/digipath/internals/features/recordings/route"
	sessionRoute "github.com/prabhatlnct2008/digipath/internals/features/sessions/route"
	speakerRoute "github.com/prabhatlnct2008/digipath/internals/features/speakers/route"
	tagRoute "github.com/prabhatlnct2008/digipath/internals/features/tags/route"
	authmw "github.com/prabhatlnct2008/digipath/internals/middlewares/auth"
)

// SetupRoutes wires the three API surfaces: /api/auth, the token-guarded
// /api/admin, and the open /api/public.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	RegisterBaseRoutes(app, db)

	api := app.Group("/api")

	adminRoute.AuthRoutes(api, db)

	admin := api.Group("/admin", authmw.AuthMiddleware(db))
	speakerRoute.SpeakerAdminRoutes(admin, db)
	tagRoute.TagAdminRoutes(admin, db)
	sessionRoute.SessionAdminRoutes(admin, db)
	recordingRoute.RecordingAdminRoutes(admin, db)

	public := api.Group("/public")
	homeRoute.HomePublicRoutes(public, db)
	sessionRoute.SessionPublicRoutes(public, db)
	recordingRoute.RecordingPublicRoutes(public, db)
	tagRoute.TagPublicRoutes(public, db)
}
