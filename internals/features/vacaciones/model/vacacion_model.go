package model

import "time"

type VacacionModel struct {
	IDVacacion    int64     `json:"id_vacacion" gorm:"column:id_vacacion;primaryKey;autoIncrement"`
	IDEmpleado    int64     `json:"id_empleado" gorm:"column:id_empleado;not null;index"`
	FechaInicio   time.Time `json:"fecha_inicio" gorm:"column:fecha_inicio;type:date;not null"`
	FechaFin      time.Time `json:"fecha_fin" gorm:"column:fecha_fin;type:date;not null"`
	DiasTomados   int       `json:"dias_tomados" gorm:"column:dias_tomados;not null"`
	Estado        string    `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:'SOLICITADO'"`
	Observaciones *string   `json:"observaciones,omitempty" gorm:"column:observaciones;type:text"`
	FechaCreacion time.Time `json:"fecha_creacion" gorm:"column:fecha_creacion;autoCreateTime"`
}

func (VacacionModel) TableName() string {
	return "vacaciones"
}
