package model

import (
	"time"
)

// HistorialSalarioModel: registro append-only de cambios de salario. Nunca se
// actualiza ni se borra una fila una vez escrita.
type HistorialSalarioModel struct {
	IDHistoricoSalario    int64     `gorm:"column:id_historico_salario;primaryKey;autoIncrement" json:"id_historico_salario"`
	IDEmpleado            int64     `gorm:"column:id_empleado;not null;index" json:"id_empleado"`
	SalarioAnterior       float64   `gorm:"column:salario_anterior;not null" json:"salario_anterior"`
	SalarioNuevo          float64   `gorm:"column:salario_nuevo;not null" json:"salario_nuevo"`
	FechaCambio           time.Time `gorm:"column:fecha_cambio;autoCreateTime" json:"fecha_cambio"`
	Motivo                string    `gorm:"column:motivo;size:255;not null" json:"motivo"`
	IDUsuarioModificacion int64     `gorm:"column:id_usuario_modificacion;not null" json:"id_usuario_modificacion"`
}

func (HistorialSalarioModel) TableName() string {
	return "historico_salarios"
}
