package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var bootTime = time.Now()

// BaseRoutes expone los endpoints de servicio que no requieren sesión.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "rrhh-backend",
			"status":  "ok",
			"uptime":  time.Since(bootTime).Round(time.Second).String(),
		})
	})
}
