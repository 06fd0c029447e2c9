package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/asistencia/marcaje/controller"
)

// MarcajeUserRoutes: reloj de asistencia del propio empleado.
func MarcajeUserRoutes(user fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewMarcajeController(db, sp)

	marcajes := user.Group("/marcajes")
	marcajes.Post("/entrada", ctrl.RegistrarEntrada)
	marcajes.Post("/salida", ctrl.RegistrarSalida)
	marcajes.Get("/mis-marcajes", ctrl.GetMisMarcajes)
}

// MarcajeAdminRoutes: supervisión y aprobación de marcajes.
func MarcajeAdminRoutes(admin fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewMarcajeController(db, sp)

	marcajes := admin.Group("/marcajes")
	marcajes.Get("/", ctrl.GetAllMarcajes)
	marcajes.Get("/empleado/:id", ctrl.GetMarcajesEmpleado)
	marcajes.Patch("/:id/estado", ctrl.UpdateEstado)
}
