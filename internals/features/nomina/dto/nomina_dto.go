package dto

import "strings"

type CrearPeriodoRequest struct {
	Tipo        string `json:"tipo" validate:"required,oneof=SEMANAL QUINCENAL MENSUAL"`
	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
}

func (r *CrearPeriodoRequest) Normalize() {
	r.Tipo = strings.ToUpper(strings.TrimSpace(r.Tipo))
	r.FechaInicio = strings.TrimSpace(r.FechaInicio)
	r.FechaFin = strings.TrimSpace(r.FechaFin)
}

type PagarNominaRequest struct {
	FechaPago string `json:"fecha_pago"`
}

type PeriodoRow struct {
	IDPeriodo     int64  `json:"id_periodo" gorm:"column:id_periodo"`
	Tipo          string `json:"tipo" gorm:"column:tipo"`
	FechaInicio   string `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin      string `json:"fecha_fin" gorm:"column:fecha_fin"`
	Estado        string `json:"estado" gorm:"column:estado"`
	FechaCreacion string `json:"fecha_creacion" gorm:"column:fecha_creacion"`
}

// NominaRow es la fila de nómina dentro de un período.
type NominaRow struct {
	IDNomina            int64   `json:"id_nomina" gorm:"column:id_nomina"`
	IDPeriodo           int64   `json:"id_periodo" gorm:"column:id_periodo"`
	IDEmpleado          int64   `json:"id_empleado" gorm:"column:id_empleado"`
	CodigoEmpleado      string  `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado      string  `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	SalarioBase         float64 `json:"salario_base" gorm:"column:salario_base"`
	HorasTrabajadas     float64 `json:"horas_trabajadas" gorm:"column:horas_trabajadas"`
	SalarioDevengado    float64 `json:"salario_devengado" gorm:"column:salario_devengado"`
	TotalDeducciones    float64 `json:"total_deducciones" gorm:"column:total_deducciones"`
	TotalBonificaciones float64 `json:"total_bonificaciones" gorm:"column:total_bonificaciones"`
	SueldoLiquido       float64 `json:"sueldo_liquido" gorm:"column:sueldo_liquido"`
	Estado              string  `json:"estado" gorm:"column:estado"`
	FechaPago           *string `json:"fecha_pago" gorm:"column:fecha_pago"`
}

// LineaRow es una deducción o bonificación aplicada a una nómina.
type LineaRow struct {
	ID          int64   `json:"id" gorm:"column:id"`
	Monto       float64 `json:"monto" gorm:"column:monto"`
	Nombre      string  `json:"nombre" gorm:"column:nombre"`
	Descripcion *string `json:"descripcion" gorm:"column:descripcion"`
}

// NominaDetalle agrega el período y los renglones de deducción/bonificación.
type NominaDetalle struct {
	NominaRow
	TipoPeriodo    string     `json:"tipo_periodo" gorm:"column:tipo_periodo"`
	FechaInicio    string     `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin       string     `json:"fecha_fin" gorm:"column:fecha_fin"`
	Deducciones    []LineaRow `json:"deducciones" gorm:"-"`
	Bonificaciones []LineaRow `json:"bonificaciones" gorm:"-"`
}

// HistorialRow es la vista de historial de nóminas de un empleado.
type HistorialRow struct {
	IDNomina            int64   `json:"id_nomina" gorm:"column:id_nomina"`
	TipoPeriodo         string  `json:"tipo_periodo" gorm:"column:tipo_periodo"`
	FechaInicio         string  `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin            string  `json:"fecha_fin" gorm:"column:fecha_fin"`
	SalarioDevengado    float64 `json:"salario_devengado" gorm:"column:salario_devengado"`
	TotalDeducciones    float64 `json:"total_deducciones" gorm:"column:total_deducciones"`
	TotalBonificaciones float64 `json:"total_bonificaciones" gorm:"column:total_bonificaciones"`
	SueldoLiquido       float64 `json:"sueldo_liquido" gorm:"column:sueldo_liquido"`
	Estado              string  `json:"estado" gorm:"column:estado"`
	FechaPago           *string `json:"fecha_pago" gorm:"column:fecha_pago"`
}
