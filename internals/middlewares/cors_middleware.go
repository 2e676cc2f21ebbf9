package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	configs "github.com/prabhatlnct2008/digipath/internals/configs"
)

// CorsMiddleware allows the admin dashboard and public site origins.
// CORS_ALLOW_ORIGINS overrides the defaults with a comma separated list.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnvOr("CORS_ALLOW_ORIGINS", strings.Join([]string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://127.0.0.1:5500",
		"https://telepathology.aiims.edu",
	}, ","))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
