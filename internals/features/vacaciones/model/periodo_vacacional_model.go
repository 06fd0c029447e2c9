package model

import "time"

// PeriodoVacacionalModel lo mantienen los procedimientos almacenados; desde la
// API sólo se consulta.
type PeriodoVacacionalModel struct {
	IDPeriodoVacacional  int64     `json:"id_periodo_vacacional" gorm:"column:id_periodo_vacacional;primaryKey;autoIncrement"`
	IDEmpleado           int64     `json:"id_empleado" gorm:"column:id_empleado;not null;index"`
	FechaInicio          time.Time `json:"fecha_inicio" gorm:"column:fecha_inicio;type:date;not null"`
	FechaFin             time.Time `json:"fecha_fin" gorm:"column:fecha_fin;type:date;not null"`
	DiasCorrespondientes int       `json:"dias_correspondientes" gorm:"column:dias_correspondientes;not null"`
	DiasTomados          int       `json:"dias_tomados" gorm:"column:dias_tomados;not null;default:0"`
	DiasPendientes       int       `json:"dias_pendientes" gorm:"column:dias_pendientes;not null"`
	Estado               string    `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:'ACTIVO'"`
}

func (PeriodoVacacionalModel) TableName() string {
	return "periodos_vacacionales"
}
