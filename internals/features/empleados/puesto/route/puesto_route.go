package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/empleados/puesto/controller"
)

func PuestoUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPuestoController(db)
	user.Get("/puestos", ctrl.GetAll)
	user.Get("/puestos/departamento/:id", ctrl.GetByDepartamento)
}

func PuestoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPuestoController(db)

	puestos := admin.Group("/puestos")
	puestos.Post("/", ctrl.Create)
	puestos.Put("/:id", ctrl.Update)
	puestos.Delete("/:id", ctrl.Delete)
}
