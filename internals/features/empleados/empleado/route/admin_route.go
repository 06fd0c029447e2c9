package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/empleados/empleado/controller"
)

// EmpleadoAdminRoutes monta /empleados; todas las rutas son de administrador.
func EmpleadoAdminRoutes(admin fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewEmpleadoController(db, sp)

	empleados := admin.Group("/empleados")
	empleados.Get("/", ctrl.GetAll)
	empleados.Get("/:id", ctrl.GetByID)
	empleados.Post("/", ctrl.Create)
	empleados.Put("/:id", ctrl.Update)
	empleados.Patch("/:id/salario", ctrl.UpdateSalario)
	empleados.Patch("/:id/baja", ctrl.DarDeBaja)
	empleados.Get("/:id/historial-salarios", ctrl.GetHistorialSalarios)
}
