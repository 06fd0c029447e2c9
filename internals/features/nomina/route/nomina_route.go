package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/nomina/controller"
)

// NominaUserRoutes: historial de nóminas del propio empleado.
func NominaUserRoutes(user fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewNominaController(db, sp)

	nomina := user.Group("/nomina")
	nomina.Get("/mi-historial", ctrl.GetMiHistorial)
}

// NominaAdminRoutes: ciclo completo de períodos y pagos.
func NominaAdminRoutes(admin fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewNominaController(db, sp)

	nomina := admin.Group("/nomina")
	nomina.Post("/periodos", ctrl.CrearPeriodo)
	nomina.Get("/periodos", ctrl.GetPeriodos)
	nomina.Get("/periodos/:id", ctrl.GetPeriodoByID)
	nomina.Post("/periodos/:id/procesar", ctrl.ProcesarPeriodo)
	nomina.Get("/periodos/:id/nominas", ctrl.GetNominasByPeriodo)
	nomina.Get("/nominas/:id", ctrl.GetNominaByID)
	nomina.Patch("/nominas/:id/pagar", ctrl.PagarNomina)
	nomina.Post("/empleados/:idEmpleado/periodos/:idPeriodo/calcular", ctrl.CalcularNominaEmpleado)
	nomina.Get("/empleados/:id/historial", ctrl.GetHistorialEmpleado)
}
