package model

type PuestoModel struct {
	IDPuesto       int64   `gorm:"column:id_puesto;primaryKey;autoIncrement" json:"id_puesto"`
	IDDepartamento int64   `gorm:"column:id_departamento;not null;index" json:"id_departamento"`
	Nombre         string  `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Descripcion    *string `gorm:"column:descripcion;size:255" json:"descripcion,omitempty"`
	// salario_base pre-llena el salario del empleado nuevo en el cliente
	SalarioBase float64 `gorm:"column:salario_base;not null" json:"salario_base"`
}

func (PuestoModel) TableName() string {
	return "puestos"
}
