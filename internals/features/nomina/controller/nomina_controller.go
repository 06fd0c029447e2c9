package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/constants"
	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/nomina/dto"
	helper "rrhh_backend/internals/helpers"
	"rrhh_backend/internals/middlewares"
)

var validate = validator.New()

type NominaController struct {
	DB *gorm.DB
	SP database.ProcedureInvoker
}

func NewNominaController(db *gorm.DB, sp database.ProcedureInvoker) *NominaController {
	return &NominaController{DB: db, SP: sp}
}

// 💰 POST /api/nomina/periodos (admin)
func (ctrl *NominaController) CrearPeriodo(c *fiber.Ctx) error {
	var req dto.CrearPeriodoRequest
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

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPCrearPeriodoNomina,
		req.Tipo, req.FechaInicio, req.FechaFin)
	if err != nil {
		return helper.InternalError(c, "Error al crear el período de nómina", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusCreated, "Periodo de nomina creado exitosamente")
}

// GET /api/nomina/periodos (admin)
func (ctrl *NominaController) GetPeriodos(c *fiber.Ctx) error {
	var rows []dto.PeriodoRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("periodos_nomina").
		Select("id_periodo, tipo, fecha_inicio, fecha_fin, estado, fecha_creacion").
		Order("id_periodo DESC").
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los períodos de nómina", err)
	}
	return helper.Data(c, rows)
}

// GET /api/nomina/periodos/:id (admin)
func (ctrl *NominaController) GetPeriodoByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	row, err := ctrl.buscarPeriodo(c, int64(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Período de nómina no encontrado")
		}
		return helper.InternalError(c, "Error al obtener el período de nómina", err)
	}
	return helper.Data(c, row)
}

func (ctrl *NominaController) buscarPeriodo(c *fiber.Ctx, id int64) (*dto.PeriodoRow, error) {
	var row dto.PeriodoRow
	err := ctrl.DB.WithContext(c.UserContext()).
		Table("periodos_nomina").
		Select("id_periodo, tipo, fecha_inicio, fecha_fin, estado, fecha_creacion").
		Where("id_periodo = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// POST /api/nomina/periodos/:id/procesar (admin)
func (ctrl *NominaController) ProcesarPeriodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	if _, err := ctrl.buscarPeriodo(c, int64(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Período de nómina no encontrado")
		}
		return helper.InternalError(c, "Error al procesar el período de nómina", err)
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPProcesarPeriodoNomina, int64(id))
	if err != nil {
		return helper.InternalError(c, "Error al procesar el período de nómina", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Período procesado exitosamente")
}

// GET /api/nomina/periodos/:id/nominas (admin)
func (ctrl *NominaController) GetNominasByPeriodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	if _, err := ctrl.buscarPeriodo(c, int64(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Período de nómina no encontrado")
		}
		return helper.InternalError(c, "Error al obtener las nóminas del período", err)
	}

	var rows []dto.NominaRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			n.id_nomina,
			n.id_periodo,
			n.id_empleado,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			n.salario_base,
			n.horas_trabajadas,
			n.salario_devengado,
			n.total_deducciones,
			n.total_bonificaciones,
			n.sueldo_liquido,
			n.estado,
			n.fecha_pago
		FROM nominas n
		JOIN empleados e ON n.id_empleado = e.id_empleado
		WHERE n.id_periodo = ?
		ORDER BY n.id_empleado`, id).
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener las nóminas del período", err)
	}
	return helper.Data(c, rows)
}

// GET /api/nomina/nominas/:id (admin)
func (ctrl *NominaController) GetNominaByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	detalle, err := ctrl.buscarNomina(c, int64(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nómina no encontrada")
		}
		return helper.InternalError(c, "Error al obtener la nómina", err)
	}
	return helper.Data(c, detalle)
}

func (ctrl *NominaController) buscarNomina(c *fiber.Ctx, id int64) (*dto.NominaDetalle, error) {
	var detalle dto.NominaDetalle
	err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			n.id_nomina,
			n.id_periodo,
			n.id_empleado,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			p.tipo AS tipo_periodo,
			p.fecha_inicio,
			p.fecha_fin,
			n.salario_base,
			n.horas_trabajadas,
			n.salario_devengado,
			n.total_deducciones,
			n.total_bonificaciones,
			n.sueldo_liquido,
			n.estado,
			n.fecha_pago
		FROM nominas n
		JOIN empleados e ON n.id_empleado = e.id_empleado
		JOIN periodos_nomina p ON n.id_periodo = p.id_periodo
		WHERE n.id_nomina = ?`, id).
		Take(&detalle).Error
	if err != nil {
		return nil, err
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			dn.id_deduccion_nomina AS id,
			dn.monto,
			td.nombre,
			td.descripcion
		FROM deducciones_nomina dn
		JOIN tipos_deducciones td ON dn.id_tipo_deduccion = td.id_tipo_deduccion
		WHERE dn.id_nomina = ?`, id).
		Scan(&detalle.Deducciones).Error; err != nil {
		return nil, err
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			bn.id_bonificacion_nomina AS id,
			bn.monto,
			tb.nombre,
			tb.descripcion
		FROM bonificaciones_nomina bn
		JOIN tipos_bonificaciones tb ON bn.id_tipo_bonificacion = tb.id_tipo_bonificacion
		WHERE bn.id_nomina = ?`, id).
		Scan(&detalle.Bonificaciones).Error; err != nil {
		return nil, err
	}
	return &detalle, nil
}

// PATCH /api/nomina/nominas/:id/pagar (admin)
func (ctrl *NominaController) PagarNomina(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PagarNominaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if _, ok := helper.ParseFecha(req.FechaPago); !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Se requiere una fecha de pago válida")
	}

	var estado string
	err = ctrl.DB.WithContext(c.UserContext()).
		Table("nominas").
		Select("estado").
		Where("id_nomina = ?", id).
		Take(&estado).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nómina no encontrada")
		}
		return helper.InternalError(c, "Error al pagar la nómina", err)
	}
	if estado == constants.NominaPagada {
		return helper.Error(c, fiber.StatusBadRequest, "La nómina ya fue pagada")
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPPagarNomina, int64(id), req.FechaPago)
	if err != nil {
		return helper.InternalError(c, "Error al pagar la nómina", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Nomina pagada exitosamente")
}

// POST /api/nomina/empleados/:idEmpleado/periodos/:idPeriodo/calcular (admin)
func (ctrl *NominaController) CalcularNominaEmpleado(c *fiber.Ctx) error {
	idEmpleado, err := c.ParamsInt("idEmpleado")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de empleado inválido")
	}
	idPeriodo, err := c.ParamsInt("idPeriodo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de período inválido")
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPCalcularNominaEmpleado,
		int64(idEmpleado), int64(idPeriodo))
	if err != nil {
		return helper.InternalError(c, "Error al calcular la nómina", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusCreated, "Nomina calculada exitosamente")
}

// GET /api/nomina/mi-historial
func (ctrl *NominaController) GetMiHistorial(c *fiber.Ctx) error {
	return ctrl.historialDeEmpleado(c, middlewares.UserID(c))
}

// GET /api/nomina/empleados/:id/historial (admin)
func (ctrl *NominaController) GetHistorialEmpleado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	return ctrl.historialDeEmpleado(c, int64(id))
}

func (ctrl *NominaController) historialDeEmpleado(c *fiber.Ctx, idEmpleado int64) error {
	var rows []dto.HistorialRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			n.id_nomina,
			p.tipo AS tipo_periodo,
			p.fecha_inicio,
			p.fecha_fin,
			n.salario_devengado,
			n.total_deducciones,
			n.total_bonificaciones,
			n.sueldo_liquido,
			n.estado,
			n.fecha_pago
		FROM nominas n
		JOIN periodos_nomina p ON n.id_periodo = p.id_periodo
		WHERE n.id_empleado = ?
		ORDER BY n.id_nomina DESC`, idEmpleado).
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener el historial de nóminas", err)
	}
	return helper.Data(c, rows)
}
