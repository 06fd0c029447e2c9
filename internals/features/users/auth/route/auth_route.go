package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/users/auth/controller"
	"rrhh_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")

	// 🔓 Público (con limiter estricto en login)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// 🔒 Requiere sesión
	auth.Get("/profile", middlewares.VerifyToken(), ctrl.GetProfile)
	auth.Post("/change-password", middlewares.VerifyToken(), ctrl.ChangePassword)
	auth.Get("/roles", middlewares.VerifyToken(), ctrl.GetRoles)
}
