package model

import "time"

type PeriodoNominaModel struct {
	IDPeriodo     int64     `json:"id_periodo" gorm:"column:id_periodo;primaryKey;autoIncrement"`
	Tipo          string    `json:"tipo" gorm:"column:tipo;type:varchar(20);not null"`
	FechaInicio   time.Time `json:"fecha_inicio" gorm:"column:fecha_inicio;type:date;not null"`
	FechaFin      time.Time `json:"fecha_fin" gorm:"column:fecha_fin;type:date;not null"`
	Estado        string    `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:'ABIERTO'"`
	FechaCreacion time.Time `json:"fecha_creacion" gorm:"column:fecha_creacion;autoCreateTime"`
}

func (PeriodoNominaModel) TableName() string {
	return "periodos_nomina"
}
