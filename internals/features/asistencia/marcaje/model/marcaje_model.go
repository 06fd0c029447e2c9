package model

import (
	"time"

	"rrhh_backend/internals/helpers/dbtime"
)

type MarcajeModel struct {
	IDMarcaje       int64       `json:"id_marcaje" gorm:"column:id_marcaje;primaryKey;autoIncrement"`
	IDEmpleado      int64       `json:"id_empleado" gorm:"column:id_empleado;not null;index"`
	Fecha           time.Time   `json:"fecha" gorm:"column:fecha;type:date;not null"`
	HoraEntrada     dbtime.Tod  `json:"hora_entrada" gorm:"column:hora_entrada;type:time;not null"`
	HoraSalida      *dbtime.Tod `json:"hora_salida,omitempty" gorm:"column:hora_salida;type:time"`
	HorasTrabajadas *float64    `json:"horas_trabajadas,omitempty" gorm:"column:horas_trabajadas;type:numeric(5,2)"`
	Observaciones   *string     `json:"observaciones,omitempty" gorm:"column:observaciones;type:text"`
	Estado          string      `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:'PENDIENTE'"`
	FechaCreacion   time.Time   `json:"fecha_creacion" gorm:"column:fecha_creacion;autoCreateTime"`
}

func (MarcajeModel) TableName() string {
	return "marcajes"
}
