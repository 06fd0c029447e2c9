package model

type RolModel struct {
	IDRol       int64   `gorm:"column:id_rol;primaryKey;autoIncrement" json:"id_rol"`
	Nombre      string  `gorm:"column:nombre;size:50;unique;not null" json:"nombre"`
	Descripcion *string `gorm:"column:descripcion;size:255" json:"descripcion,omitempty"`
	Activo      bool    `gorm:"column:activo;not null;default:true" json:"activo"`
}

func (RolModel) TableName() string {
	return "roles"
}
