package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/liquidaciones/controller"
)

// LiquidacionAdminRoutes: cálculo y pago de liquidaciones (sólo administración).
func LiquidacionAdminRoutes(admin fiber.Router, db *gorm.DB, sp database.ProcedureInvoker) {
	ctrl := controller.NewLiquidacionController(db, sp)

	liquidaciones := admin.Group("/liquidaciones")
	liquidaciones.Post("/", ctrl.Calcular)
	liquidaciones.Get("/", ctrl.GetAll)
	liquidaciones.Get("/:id", ctrl.GetByID)
	liquidaciones.Patch("/:id/pagar", ctrl.Pagar)
}
