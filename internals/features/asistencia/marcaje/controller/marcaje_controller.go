package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/constants"
	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/asistencia/marcaje/dto"
	helper "rrhh_backend/internals/helpers"
	"rrhh_backend/internals/middlewares"
)

type MarcajeController struct {
	DB *gorm.DB
	SP database.ProcedureInvoker
}

func NewMarcajeController(db *gorm.DB, sp database.ProcedureInvoker) *MarcajeController {
	return &MarcajeController{DB: db, SP: sp}
}

// 🕐 POST /api/marcajes/entrada
func (ctrl *MarcajeController) RegistrarEntrada(c *fiber.Ctx) error {
	idEmpleado := middlewares.UserID(c)

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPRegistrarEntrada, idEmpleado)
	if err != nil {
		return helper.InternalError(c, "Error al registrar la entrada", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusCreated, "Marcado exitosamente")
}

// 🕐 POST /api/marcajes/salida
func (ctrl *MarcajeController) RegistrarSalida(c *fiber.Ctx) error {
	idEmpleado := middlewares.UserID(c)

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPRegistrarSalida, idEmpleado)
	if err != nil {
		return helper.InternalError(c, "Error al registrar la salida", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Marcado exitosamente")
}

const marcajeSelect = `
	SELECT
		m.id_marcaje,
		m.fecha,
		m.hora_entrada,
		m.hora_salida,
		m.horas_trabajadas,
		m.observaciones,
		m.estado`

// GET /api/marcajes/mis-marcajes?fechaInicio&fechaFin
func (ctrl *MarcajeController) GetMisMarcajes(c *fiber.Ctx) error {
	return ctrl.marcajesDeEmpleado(c, middlewares.UserID(c))
}

// GET /api/marcajes/empleado/:id (admin)
func (ctrl *MarcajeController) GetMarcajesEmpleado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	return ctrl.marcajesDeEmpleado(c, int64(id))
}

func (ctrl *MarcajeController) marcajesDeEmpleado(c *fiber.Ctx, idEmpleado int64) error {
	inicio, fin := helper.RangoOMesActual(c.Query("fechaInicio"), c.Query("fechaFin"))

	var rows []dto.MarcajeRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(marcajeSelect+`
			FROM marcajes m
			WHERE m.id_empleado = ?
			AND m.fecha BETWEEN ? AND ?
			ORDER BY m.fecha DESC, m.hora_entrada DESC`,
			idEmpleado, inicio, fin).
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los marcajes", err)
	}
	return helper.Data(c, rows)
}

// GET /api/marcajes (admin)
func (ctrl *MarcajeController) GetAllMarcajes(c *fiber.Ctx) error {
	inicio, fin := helper.RangoOMesActual(c.Query("fechaInicio"), c.Query("fechaFin"))

	var rows []dto.MarcajeEmpleadoRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(marcajeSelect+`,
			e.id_empleado,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado
			FROM marcajes m
			JOIN empleados e ON m.id_empleado = e.id_empleado
			WHERE m.fecha BETWEEN ? AND ?
			ORDER BY m.fecha DESC, m.hora_entrada DESC`,
			inicio, fin).
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener todos los marcajes", err)
	}
	return helper.Data(c, rows)
}

// PATCH /api/marcajes/:id/estado (admin)
func (ctrl *MarcajeController) UpdateEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ActualizarEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	req.Estado = strings.TrimSpace(req.Estado)
	if !constants.EstadoMarcajeValido(req.Estado) {
		return helper.Error(c, fiber.StatusBadRequest, "Estado inválido")
	}

	result := ctrl.DB.WithContext(c.UserContext()).
		Table("marcajes").
		Where("id_marcaje = ?", id).
		Updates(map[string]interface{}{
			"estado":        req.Estado,
			"observaciones": req.Observaciones,
		})
	if result.Error != nil {
		return helper.InternalError(c, "Error al actualizar el estado del marcaje", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No se pudo actualizar el marcaje")
	}
	return helper.Success(c, "Marcaje actualizado correctamente", nil)
}
