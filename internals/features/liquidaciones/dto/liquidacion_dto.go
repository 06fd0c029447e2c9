package dto

import "strings"

type CalcularLiquidacionRequest struct {
	IDEmpleado       int64  `json:"id_empleado" validate:"required,gt=0"`
	FechaLiquidacion string `json:"fecha_liquidacion" validate:"required,datetime=2006-01-02"`
	Motivo           string `json:"motivo" validate:"required,oneof=DESPIDO_JUSTIFICADO DESPIDO_INJUSTIFICADO RENUNCIA MUTUO_ACUERDO FALLECIMIENTO"`
	Observaciones    string `json:"observaciones"`
}

func (r *CalcularLiquidacionRequest) Normalize() {
	r.FechaLiquidacion = strings.TrimSpace(r.FechaLiquidacion)
	r.Motivo = strings.ToUpper(strings.TrimSpace(r.Motivo))
	r.Observaciones = strings.TrimSpace(r.Observaciones)
}

type PagarLiquidacionRequest struct {
	FechaPago     string `json:"fecha_pago"`
	Observaciones string `json:"observaciones"`
}

type LiquidacionRow struct {
	IDLiquidacion         int64   `json:"id_liquidacion" gorm:"column:id_liquidacion"`
	IDEmpleado            int64   `json:"id_empleado" gorm:"column:id_empleado"`
	CodigoEmpleado        string  `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado        string  `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	FechaLiquidacion      string  `json:"fecha_liquidacion" gorm:"column:fecha_liquidacion"`
	Motivo                string  `json:"motivo" gorm:"column:motivo"`
	AnosLaborados         float64 `json:"anos_laborados" gorm:"column:anos_laborados"`
	SalarioPromedio       float64 `json:"salario_promedio" gorm:"column:salario_promedio"`
	Indemnizacion         float64 `json:"indemnizacion" gorm:"column:indemnizacion"`
	AguinaldoProporcional float64 `json:"aguinaldo_proporcional" gorm:"column:aguinaldo_proporcional"`
	Bono14Proporcional    float64 `json:"bono14_proporcional" gorm:"column:bono14_proporcional"`
	VacacionesPendientes  float64 `json:"vacaciones_pendientes" gorm:"column:vacaciones_pendientes"`
	OtrosPagos            float64 `json:"otros_pagos" gorm:"column:otros_pagos"`
	TotalDeducciones      float64 `json:"total_deducciones" gorm:"column:total_deducciones"`
	TotalLiquidacion      float64 `json:"total_liquidacion" gorm:"column:total_liquidacion"`
	Estado                string  `json:"estado" gorm:"column:estado"`
	FechaPago             *string `json:"fecha_pago" gorm:"column:fecha_pago"`
}

// DeduccionRow es un renglón de deducción aplicado a la liquidación.
type DeduccionRow struct {
	ID          int64   `json:"id" gorm:"column:id"`
	Monto       float64 `json:"monto" gorm:"column:monto"`
	Nombre      string  `json:"nombre" gorm:"column:nombre"`
	Descripcion *string `json:"descripcion" gorm:"column:descripcion"`
}

// LiquidacionDetalle agrega datos contractuales del empleado y las deducciones.
type LiquidacionDetalle struct {
	LiquidacionRow
	DPI               string         `json:"dpi" gorm:"column:dpi"`
	Observaciones     *string        `json:"observaciones" gorm:"column:observaciones"`
	FechaContratacion string         `json:"fecha_contratacion" gorm:"column:fecha_contratacion"`
	FechaFinContrato  *string        `json:"fecha_fin_contrato" gorm:"column:fecha_fin_contrato"`
	Deducciones       []DeduccionRow `json:"deducciones" gorm:"-"`
}
