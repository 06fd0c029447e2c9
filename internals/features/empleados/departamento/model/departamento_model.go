package model

type DepartamentoModel struct {
	IDDepartamento int64   `gorm:"column:id_departamento;primaryKey;autoIncrement" json:"id_departamento"`
	Nombre         string  `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Descripcion    *string `gorm:"column:descripcion;size:255" json:"descripcion,omitempty"`
}

func (DepartamentoModel) TableName() string {
	return "departamentos"
}
