package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/constants"
	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/vacaciones/dto"
	helper "rrhh_backend/internals/helpers"
	"rrhh_backend/internals/middlewares"
)

var validate = validator.New()

type VacacionController struct {
	DB *gorm.DB
	SP database.ProcedureInvoker
}

func NewVacacionController(db *gorm.DB, sp database.ProcedureInvoker) *VacacionController {
	return &VacacionController{DB: db, SP: sp}
}

// 🏖️ POST /api/vacaciones/solicitar
func (ctrl *VacacionController) Solicitar(c *fiber.Ctx) error {
	var req dto.SolicitarVacacionesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inicio, _ := helper.ParseFecha(req.FechaInicio)
	fin, _ := helper.ParseFecha(req.FechaFin)
	if !inicio.Before(fin) {
		return helper.Error(c, fiber.StatusBadRequest, "La fecha de inicio debe ser anterior a la fecha de fin")
	}
	if !helper.EsFechaFutura(inicio) {
		return helper.Error(c, fiber.StatusBadRequest, "La fecha de inicio debe ser futura")
	}

	idEmpleado := middlewares.UserID(c)
	diasSolicitados := helper.DiasHabiles(inicio, fin)

	// Saldo disponible sobre los períodos vacacionales activos.
	var saldo int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("periodos_vacacionales").
		Where("id_empleado = ? AND estado = ?", idEmpleado, constants.PeriodoVacacionalActivo).
		Select("COALESCE(SUM(dias_pendientes), 0)").
		Scan(&saldo).Error; err != nil {
		return helper.InternalError(c, "Error al solicitar vacaciones", err)
	}
	if int64(diasSolicitados) > saldo {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Días solicitados (%d) exceden el saldo disponible (%d)", diasSolicitados, saldo))
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPSolicitarVacaciones,
		idEmpleado, req.FechaInicio, req.FechaFin, req.Observaciones)
	if err != nil {
		return helper.InternalError(c, "Error al solicitar vacaciones", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusCreated, "Vacacion solicitada exitosamente")
}

// PATCH /api/vacaciones/solicitudes/:id/aprobar (admin)
func (ctrl *VacacionController) Aprobar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPAprobarVacaciones, int64(id))
	if err != nil {
		return helper.InternalError(c, "Error al aprobar las vacaciones", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Vacacion aprobada exitosamente")
}

// PATCH /api/vacaciones/solicitudes/:id/rechazar (admin)
func (ctrl *VacacionController) Rechazar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.RechazarVacacionesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if req.Observaciones == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Se requiere incluir observaciones al rechazar las vacaciones")
	}

	// Sólo se rechaza lo que sigue en SOLICITADO.
	result := ctrl.DB.WithContext(c.UserContext()).
		Table("vacaciones").
		Where("id_vacacion = ? AND estado = ?", id, constants.VacacionSolicitada).
		Updates(map[string]interface{}{
			"estado":        constants.VacacionRechazada,
			"observaciones": req.Observaciones,
		})
	if result.Error != nil {
		return helper.InternalError(c, "Error al rechazar las vacaciones", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No se pudieron rechazar las vacaciones")
	}
	return helper.Success(c, "Vacaciones rechazadas correctamente", nil)
}

// GET /api/vacaciones/solicitudes?estado= (admin)
func (ctrl *VacacionController) GetSolicitudes(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Table("vacaciones AS v").
		Select(`v.id_vacacion,
			v.id_empleado,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			v.fecha_inicio,
			v.fecha_fin,
			v.dias_tomados,
			v.estado,
			v.observaciones,
			v.fecha_creacion`).
		Joins("JOIN empleados e ON v.id_empleado = e.id_empleado").
		Order("v.fecha_creacion DESC")

	if estado := c.Query("estado"); estado != "" {
		q = q.Where("v.estado = ?", estado)
	}

	var rows []dto.SolicitudEmpleadoRow
	if err := q.Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener las solicitudes de vacaciones", err)
	}
	return helper.Data(c, rows)
}

// GET /api/vacaciones/mis-solicitudes
func (ctrl *VacacionController) GetMisSolicitudes(c *fiber.Ctx) error {
	return ctrl.solicitudesDeEmpleado(c, middlewares.UserID(c))
}

// GET /api/vacaciones/empleado/:id/solicitudes (admin)
func (ctrl *VacacionController) GetSolicitudesEmpleado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	return ctrl.solicitudesDeEmpleado(c, int64(id))
}

func (ctrl *VacacionController) solicitudesDeEmpleado(c *fiber.Ctx, idEmpleado int64) error {
	var rows []dto.SolicitudRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("vacaciones").
		Select("id_vacacion, fecha_inicio, fecha_fin, dias_tomados, estado, observaciones, fecha_creacion").
		Where("id_empleado = ?", idEmpleado).
		Order("id_vacacion DESC").
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener las solicitudes de vacaciones", err)
	}
	return helper.Data(c, rows)
}

// GET /api/vacaciones/mis-periodos
func (ctrl *VacacionController) GetMisPeriodos(c *fiber.Ctx) error {
	return ctrl.periodosDeEmpleado(c, middlewares.UserID(c))
}

// GET /api/vacaciones/empleado/:id/periodos (admin)
func (ctrl *VacacionController) GetPeriodosEmpleado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	return ctrl.periodosDeEmpleado(c, int64(id))
}

func (ctrl *VacacionController) periodosDeEmpleado(c *fiber.Ctx, idEmpleado int64) error {
	var rows []dto.PeriodoRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("periodos_vacacionales").
		Select(`id_periodo_vacacional, fecha_inicio, fecha_fin,
			dias_correspondientes, dias_tomados, dias_pendientes, estado`).
		Where("id_empleado = ?", idEmpleado).
		Order("fecha_inicio DESC").
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los períodos vacacionales", err)
	}
	return helper.Data(c, rows)
}
