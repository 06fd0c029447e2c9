package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/empleados/departamento/controller"
)

// Lectura para cualquier autenticado; mutaciones montadas en el grupo admin.
func DepartamentoUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartamentoController(db)
	user.Get("/departamentos", ctrl.GetAll)
}

func DepartamentoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartamentoController(db)

	departamentos := admin.Group("/departamentos")
	departamentos.Post("/", ctrl.Create)
	departamentos.Put("/:id", ctrl.Update)
	departamentos.Delete("/:id", ctrl.Delete)
}
