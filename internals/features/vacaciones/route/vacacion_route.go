package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/vacaciones/controller"
)

// VacacionUserRoutes: solicitudes y saldos del propio empleado.
func VacacionUserRoutes(user fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewVacacionController(db, sp)

	vacaciones := user.Group("/vacaciones")
	vacaciones.Post("/solicitar", ctrl.Solicitar)
	vacaciones.Get("/mis-solicitudes", ctrl.GetMisSolicitudes)
	vacaciones.Get("/mis-periodos", ctrl.GetMisPeriodos)
}

// VacacionAdminRoutes: gestión de solicitudes de todos los empleados.
func VacacionAdminRoutes(admin fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewVacacionController(db, sp)

	vacaciones := admin.Group("/vacaciones")
	vacaciones.Get("/solicitudes", ctrl.GetSolicitudes)
	vacaciones.Patch("/solicitudes/:id/aprobar", ctrl.Aprobar)
	vacaciones.Patch("/solicitudes/:id/rechazar", ctrl.Rechazar)
	vacaciones.Get("/empleado/:id/solicitudes", ctrl.GetSolicitudesEmpleado)
	vacaciones.Get("/empleado/:id/periodos", ctrl.GetPeriodosEmpleado)
}
