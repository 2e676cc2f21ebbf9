package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// RegisterBaseRoutes adds the unversioned service endpoints.
func RegisterBaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus == "down" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":         "ok",
			"database":       dbStatus,
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
		})
	})
}
