package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/reportes/controller"
)

// ReporteAdminRoutes: reportes de sólo lectura para administración.
func ReporteAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReporteController(db)

	reportes := admin.Group("/reportes")
	reportes.Get("/nomina/periodo/:id", ctrl.NominaPorPeriodo)
	reportes.Get("/marcajes/departamento/:id", ctrl.MarcajesPorDepartamento)
	reportes.Get("/vacaciones/departamento/:id", ctrl.VacacionesPorDepartamento)
}
