package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	marcajeRoute "rrhh_backend/internals/features/asistencia/marcaje/route"
	departamentoRoute "rrhh_backend/internals/features/empleados/departamento/route"
	empleadoRoute "rrhh_backend/internals/features/empleados/empleado/route"
	puestoRoute "rrhh_backend/internals/features/empleados/puesto/route"
	liquidacionRoute "rrhh_backend/internals/features/liquidaciones/route"
	nominaRoute "rrhh_backend/internals/features/nomina/route"
	reporteRoute "rrhh_backend/internals/features/reportes/route"
	authRoute "rrhh_backend/internals/features/users/auth/route"
	vacacionRoute "rrhh_backend/internals/features/vacaciones/route"
	"rrhh_backend/internals/middlewares"
)

// SetupRoutes monta todo el enrutado de la API sobre /api.
//
// Tres niveles de acceso:
//   - público: login (con limiter estricto)
//   - autenticado: operaciones del propio empleado y catálogos de lectura
//   - admin: gestión de empleados, nómina, liquidaciones y reportes
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	sp := database.NewProcedureClient(db)

	BaseRoutes(app)

	app.Use("/api", middlewares.GlobalRateLimiter())

	// 🔑 Autenticación (protección por ruta)
	authRoute.AuthRoutes(app, db)

	// 👤 Rutas de empleado autenticado
	user := app.Group("/api", middlewares.VerifyToken())
	departamentoRoute.DepartamentoUserRoutes(user, db)
	puestoRoute.PuestoUserRoutes(user, db)
	marcajeRoute.MarcajeUserRoutes(user, db, sp)
	vacacionRoute.VacacionUserRoutes(user, db, sp)
	nominaRoute.NominaUserRoutes(user, db, sp)

	// 🛡️ Rutas de administración (hereda VerifyToken del grupo anterior)
	admin := user.Group("/", middlewares.IsAdmin())
	empleadoRoute.EmpleadoAdminRoutes(admin, db, sp)
	departamentoRoute.DepartamentoAdminRoutes(admin, db)
	puestoRoute.PuestoAdminRoutes(admin, db)
	marcajeRoute.MarcajeAdminRoutes(admin, db, sp)
	vacacionRoute.VacacionAdminRoutes(admin, db, sp)
	nominaRoute.NominaAdminRoutes(admin, db, sp)
	liquidacionRoute.LiquidacionAdminRoutes(admin, db, sp)
	reporteRoute.ReporteAdminRoutes(admin, db)

	log.Println("✅ Rutas montadas")
}
