package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/constants"
	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/liquidaciones/dto"
	helper "rrhh_backend/internals/helpers"
)

var validate = validator.New()

type LiquidacionController struct {
	DB *gorm.DB
	SP database.ProcedureInvoker
}

func NewLiquidacionController(db *gorm.DB, sp database.ProcedureInvoker) *LiquidacionController {
	return &LiquidacionController{DB: db, SP: sp}
}

// 📄 POST /api/liquidaciones (admin)
func (ctrl *LiquidacionController) Calcular(c *fiber.Ctx) error {
	var req dto.CalcularLiquidacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fecha, _ := helper.ParseFecha(req.FechaLiquidacion)
	if helper.EsFechaFutura(fecha) {
		return helper.Error(c, fiber.StatusBadRequest, "La fecha de liquidación no puede ser futura")
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPCalcularLiquidacion,
		req.IDEmpleado, req.FechaLiquidacion, req.Motivo)
	if err != nil {
		return helper.InternalError(c, "Error al calcular la liquidación", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusCreated, "Liquidación calculada exitosamente")
}

// GET /api/liquidaciones (admin)
func (ctrl *LiquidacionController) GetAll(c *fiber.Ctx) error {
	var rows []dto.LiquidacionRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			l.id_liquidacion,
			l.id_empleado,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			l.fecha_liquidacion,
			l.motivo,
			l.anos_laborados,
			l.salario_promedio,
			l.indemnizacion,
			l.aguinaldo_proporcional,
			l.bono14_proporcional,
			l.vacaciones_pendientes,
			l.otros_pagos,
			l.total_deducciones,
			l.total_liquidacion,
			l.estado,
			l.fecha_pago
		FROM liquidaciones l
		JOIN empleados e ON l.id_empleado = e.id_empleado
		ORDER BY l.fecha_liquidacion DESC`).
		Scan(&rows).Error; err != nil {
		return helper.InternalError(c, "Error al obtener las liquidaciones", err)
	}
	return helper.Data(c, rows)
}

// GET /api/liquidaciones/:id (admin)
func (ctrl *LiquidacionController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var detalle dto.LiquidacionDetalle
	err = ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			l.id_liquidacion,
			l.id_empleado,
			e.codigo_empleado,
			e.dpi,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			l.fecha_liquidacion,
			l.motivo,
			l.anos_laborados,
			l.salario_promedio,
			l.indemnizacion,
			l.aguinaldo_proporcional,
			l.bono14_proporcional,
			l.vacaciones_pendientes,
			l.otros_pagos,
			l.total_deducciones,
			l.total_liquidacion,
			l.estado,
			l.observaciones,
			l.fecha_pago,
			e.fecha_contratacion,
			e.fecha_fin_contrato
		FROM liquidaciones l
		JOIN empleados e ON l.id_empleado = e.id_empleado
		WHERE l.id_liquidacion = ?`, id).
		Take(&detalle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Liquidación no encontrada")
		}
		return helper.InternalError(c, "Error al obtener la liquidación", err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			dl.id_deduccion_liquidacion AS id,
			dl.monto,
			td.nombre,
			td.descripcion
		FROM deducciones_liquidacion dl
		JOIN tipos_deducciones td ON dl.id_tipo_deduccion = td.id_tipo_deduccion
		WHERE dl.id_liquidacion = ?`, id).
		Scan(&detalle.Deducciones).Error; err != nil {
		return helper.InternalError(c, "Error al obtener la liquidación", err)
	}
	return helper.Data(c, detalle)
}

// PATCH /api/liquidaciones/:id/pagar (admin)
func (ctrl *LiquidacionController) Pagar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PagarLiquidacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if _, ok := helper.ParseFecha(req.FechaPago); !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Se requiere una fecha de pago válida")
	}

	var estado string
	err = ctrl.DB.WithContext(c.UserContext()).
		Table("liquidaciones").
		Select("estado").
		Where("id_liquidacion = ?", id).
		Take(&estado).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Liquidación no encontrada")
		}
		return helper.InternalError(c, "Error al pagar la liquidación", err)
	}
	if estado == constants.LiquidacionPagada {
		return helper.Error(c, fiber.StatusBadRequest, "La liquidación ya fue pagada")
	}

	result := ctrl.DB.WithContext(c.UserContext()).
		Table("liquidaciones").
		Where("id_liquidacion = ?", id).
		Updates(map[string]interface{}{
			"estado":        constants.LiquidacionPagada,
			"fecha_pago":    req.FechaPago,
			"observaciones": req.Observaciones,
		})
	if result.Error != nil {
		return helper.InternalError(c, "Error al pagar la liquidación", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No se pudo marcar la liquidación como pagada")
	}
	return helper.Success(c, "Liquidación pagada correctamente", nil)
}
