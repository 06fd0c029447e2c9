package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/reportes/dto"
	helper "rrhh_backend/internals/helpers"
)

type ReporteController struct {
	DB *gorm.DB
}

func NewReporteController(db *gorm.DB) *ReporteController {
	return &ReporteController{DB: db}
}

// 📊 GET /api/reportes/nomina/periodo/:id
func (ctrl *ReporteController) NominaPorPeriodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var periodo dto.PeriodoReporte
	err = ctrl.DB.WithContext(c.UserContext()).
		Table("periodos_nomina").
		Select("tipo, fecha_inicio, fecha_fin").
		Where("id_periodo = ?", id).
		Take(&periodo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Período no encontrado")
		}
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	var nominas []dto.NominaReporteRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			n.id_nomina,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			p.nombre AS puesto,
			d.nombre AS departamento,
			n.salario_base,
			n.salario_devengado,
			n.total_deducciones,
			n.total_bonificaciones,
			n.sueldo_liquido,
			n.estado
		FROM nominas n
		JOIN empleados e ON n.id_empleado = e.id_empleado
		JOIN puestos p ON e.id_puesto = p.id_puesto
		JOIN departamentos d ON p.id_departamento = d.id_departamento
		WHERE n.id_periodo = ?
		ORDER BY d.nombre, e.nombre, e.apellido`, id).
		Scan(&nominas).Error; err != nil {
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	var totales dto.NominaTotales
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			COUNT(*) AS total_empleados,
			COALESCE(SUM(salario_base), 0) AS total_salario_base,
			COALESCE(SUM(salario_devengado), 0) AS total_salario_devengado,
			COALESCE(SUM(total_deducciones), 0) AS total_deducciones,
			COALESCE(SUM(total_bonificaciones), 0) AS total_bonificaciones,
			COALESCE(SUM(sueldo_liquido), 0) AS total_sueldo_liquido
		FROM nominas
		WHERE id_periodo = ?`, id).
		Take(&totales).Error; err != nil {
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	return helper.Data(c, dto.ReporteNominaPeriodo{
		Periodo: periodo,
		Nominas: nominas,
		Totales: totales,
	})
}

// 📊 GET /api/reportes/marcajes/departamento/:id?fechaInicio&fechaFin
func (ctrl *ReporteController) MarcajesPorDepartamento(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	inicio, fin := helper.RangoOMesActual(c.Query("fechaInicio"), c.Query("fechaFin"))

	var nombreDepto string
	err = ctrl.DB.WithContext(c.UserContext()).
		Table("departamentos").
		Select("nombre").
		Where("id_departamento = ?", id).
		Take(&nombreDepto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Departamento no encontrado")
		}
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	var marcajes []dto.MarcajeReporteRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			m.id_marcaje,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			p.nombre AS puesto,
			m.fecha,
			m.hora_entrada,
			m.hora_salida,
			m.horas_trabajadas,
			m.estado
		FROM marcajes m
		JOIN empleados e ON m.id_empleado = e.id_empleado
		JOIN puestos p ON e.id_puesto = p.id_puesto
		WHERE p.id_departamento = ?
		AND m.fecha BETWEEN ? AND ?
		ORDER BY m.fecha DESC, e.nombre, e.apellido`, id, inicio, fin).
		Scan(&marcajes).Error; err != nil {
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	var resumen []dto.MarcajeResumenRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			e.id_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			COUNT(m.id_marcaje) AS total_marcajes,
			COALESCE(SUM(CASE WHEN m.estado = 'APROBADO' THEN m.horas_trabajadas ELSE 0 END), 0) AS total_horas_aprobadas
		FROM empleados e
		JOIN puestos p ON e.id_puesto = p.id_puesto
		LEFT JOIN marcajes m ON e.id_empleado = m.id_empleado AND m.fecha BETWEEN ? AND ?
		WHERE p.id_departamento = ?
		GROUP BY e.id_empleado, e.nombre, e.apellido
		ORDER BY e.nombre, e.apellido`, inicio, fin, id).
		Scan(&resumen).Error; err != nil {
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	return helper.Data(c, dto.ReporteMarcajesDepartamento{
		Departamento:     nombreDepto,
		FechaInicio:      inicio.Format(helper.FechaLayout),
		FechaFin:         fin.Format(helper.FechaLayout),
		Marcajes:         marcajes,
		ResumenEmpleados: resumen,
	})
}

// 📊 GET /api/reportes/vacaciones/departamento/:id?fechaInicio&fechaFin&estado
func (ctrl *ReporteController) VacacionesPorDepartamento(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}
	inicio, fin := helper.RangoOAnioActual(c.Query("fechaInicio"), c.Query("fechaFin"))
	estado := c.Query("estado")

	q := ctrl.DB.WithContext(c.UserContext()).
		Table("vacaciones AS v").
		Select(`v.id_vacacion,
			e.codigo_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			p.nombre AS puesto,
			v.fecha_inicio,
			v.fecha_fin,
			v.dias_tomados,
			v.estado,
			v.observaciones`).
		Joins("JOIN empleados e ON v.id_empleado = e.id_empleado").
		Joins("JOIN puestos p ON e.id_puesto = p.id_puesto").
		Where("p.id_departamento = ?", id).
		Where("(v.fecha_inicio BETWEEN ? AND ?) OR (v.fecha_fin BETWEEN ? AND ?)",
			inicio, fin, inicio, fin).
		Order("v.fecha_inicio DESC, e.nombre, e.apellido")
	if estado != "" {
		q = q.Where("v.estado = ?", estado)
	}

	var vacaciones []dto.VacacionReporteRow
	if err := q.Scan(&vacaciones).Error; err != nil {
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	var resumen []dto.VacacionResumenRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT
			e.id_empleado,
			(e.nombre || ' ' || e.apellido) AS nombre_empleado,
			pv.dias_correspondientes,
			pv.dias_tomados,
			pv.dias_pendientes
		FROM empleados e
		JOIN puestos p ON e.id_puesto = p.id_puesto
		LEFT JOIN periodos_vacacionales pv ON e.id_empleado = pv.id_empleado AND pv.estado = 'ACTIVO'
		WHERE p.id_departamento = ?
		ORDER BY e.nombre, e.apellido`, id).
		Scan(&resumen).Error; err != nil {
		return helper.InternalError(c, "Error al generar el reporte", err)
	}

	return helper.Data(c, dto.ReporteVacacionesDepartamento{
		FechaInicio:      inicio.Format(helper.FechaLayout),
		FechaFin:         fin.Format(helper.FechaLayout),
		Estado:           estado,
		Vacaciones:       vacaciones,
		ResumenEmpleados: resumen,
	})
}
