package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhatlnct2008/digipath/internals/middlewares/logger"
)

// SetupMiddlewares registers the global chain: panic recovery first, then
// CORS, request logging and the IP rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
