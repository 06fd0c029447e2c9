package model

import (
	"time"
)

// EmpleadoModel representa la tabla empleados. El password nunca se serializa.
type EmpleadoModel struct {
	IDEmpleado       int64      `gorm:"column:id_empleado;primaryKey;autoIncrement" json:"id_empleado"`
	CodigoEmpleado   string     `gorm:"column:codigo_empleado;size:20;unique;not null" json:"codigo_empleado"`
	Nombre           string     `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Apellido         string     `gorm:"column:apellido;size:100;not null" json:"apellido"`
	DPI              string     `gorm:"column:dpi;size:20;unique;not null" json:"dpi"`
	FechaNacimiento  time.Time  `gorm:"column:fecha_nacimiento;type:date;not null" json:"fecha_nacimiento"`
	Direccion        string     `gorm:"column:direccion;size:255;not null" json:"direccion"`
	Telefono         *string    `gorm:"column:telefono;size:20" json:"telefono,omitempty"`
	Email            string     `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password         string     `gorm:"column:password;not null" json:"-"`
	IDPuesto         int64      `gorm:"column:id_puesto;not null" json:"id_puesto"`
	IDRol            int64      `gorm:"column:id_rol;not null" json:"id_rol"`
	FechaContratacion time.Time `gorm:"column:fecha_contratacion;type:date;not null" json:"fecha_contratacion"`
	FechaFinContrato *time.Time `gorm:"column:fecha_fin_contrato;type:date" json:"fecha_fin_contrato,omitempty"`
	Estado           string     `gorm:"column:estado;size:20;not null;default:'ACTIVO'" json:"estado"`
	SalarioActual    float64    `gorm:"column:salario_actual;not null" json:"salario_actual"`
	FechaCreacion    time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (EmpleadoModel) TableName() string {
	return "empleados"
}
