package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "edacademy_backend/internals/databases"
)

var startedAt = time.Now()

// BaseRoutes exposes unauthenticated service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		dbStatus := "up"
		if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   status,
			"database": dbStatus,
			"uptime":   time.Since(startedAt).String(),
		})
	})
}
