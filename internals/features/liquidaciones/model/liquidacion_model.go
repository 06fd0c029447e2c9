package model

import "time"

// LiquidacionModel lo calcula sp_calcular_liquidacion; la API lo consulta y
// sólo muta el estado de pago.
type LiquidacionModel struct {
	IDLiquidacion         int64      `json:"id_liquidacion" gorm:"column:id_liquidacion;primaryKey;autoIncrement"`
	IDEmpleado            int64      `json:"id_empleado" gorm:"column:id_empleado;not null;index"`
	FechaLiquidacion      time.Time  `json:"fecha_liquidacion" gorm:"column:fecha_liquidacion;type:date;not null"`
	Motivo                string     `json:"motivo" gorm:"column:motivo;type:varchar(30);not null"`
	AnosLaborados         float64    `json:"anos_laborados" gorm:"column:anos_laborados;type:numeric(5,2);not null"`
	SalarioPromedio       float64    `json:"salario_promedio" gorm:"column:salario_promedio;type:numeric(12,2);not null"`
	Indemnizacion         float64    `json:"indemnizacion" gorm:"column:indemnizacion;type:numeric(12,2);not null"`
	AguinaldoProporcional float64    `json:"aguinaldo_proporcional" gorm:"column:aguinaldo_proporcional;type:numeric(12,2);not null"`
	Bono14Proporcional    float64    `json:"bono14_proporcional" gorm:"column:bono14_proporcional;type:numeric(12,2);not null"`
	VacacionesPendientes  float64    `json:"vacaciones_pendientes" gorm:"column:vacaciones_pendientes;type:numeric(12,2);not null"`
	OtrosPagos            float64    `json:"otros_pagos" gorm:"column:otros_pagos;type:numeric(12,2);not null;default:0"`
	TotalDeducciones      float64    `json:"total_deducciones" gorm:"column:total_deducciones;type:numeric(12,2);not null;default:0"`
	TotalLiquidacion      float64    `json:"total_liquidacion" gorm:"column:total_liquidacion;type:numeric(12,2);not null"`
	Estado                string     `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:'CALCULADO'"`
	Observaciones         *string    `json:"observaciones,omitempty" gorm:"column:observaciones;type:text"`
	FechaPago             *time.Time `json:"fecha_pago,omitempty" gorm:"column:fecha_pago;type:date"`
}

func (LiquidacionModel) TableName() string {
	return "liquidaciones"
}

type DeduccionLiquidacionModel struct {
	IDDeduccionLiquidacion int64   `json:"id_deduccion_liquidacion" gorm:"column:id_deduccion_liquidacion;primaryKey;autoIncrement"`
	IDLiquidacion          int64   `json:"id_liquidacion" gorm:"column:id_liquidacion;not null;index"`
	IDTipoDeduccion        int64   `json:"id_tipo_deduccion" gorm:"column:id_tipo_deduccion;not null"`
	Monto                  float64 `json:"monto" gorm:"column:monto;type:numeric(12,2);not null"`
}

func (DeduccionLiquidacionModel) TableName() string {
	return "deducciones_liquidacion"
}
