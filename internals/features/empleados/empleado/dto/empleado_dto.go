package dto

import (
	"strings"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CrearEmpleadoRequest struct {
	CodigoEmpleado    string  `json:"codigo_empleado" validate:"required,max=20"`
	Nombre            string  `json:"nombre" validate:"required,max=100"`
	Apellido          string  `json:"apellido" validate:"required,max=100"`
	DPI               string  `json:"dpi" validate:"required,max=20"`
	FechaNacimiento   string  `json:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	Direccion         string  `json:"direccion" validate:"required,max=255"`
	Telefono          *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Email             string  `json:"email" validate:"required,email,max=255"`
	IDPuesto          int64   `json:"id_puesto" validate:"required,gt=0"`
	IDRol             int64   `json:"id_rol" validate:"required,gt=0"`
	FechaContratacion string  `json:"fecha_contratacion" validate:"required,datetime=2006-01-02"`
	SalarioActual     float64 `json:"salario_actual" validate:"gte=0"`
	Password          string  `json:"password" validate:"required,min=6"`
}

func (r *CrearEmpleadoRequest) Normalize() {
	r.CodigoEmpleado = strings.TrimSpace(r.CodigoEmpleado)
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellido = strings.TrimSpace(r.Apellido)
	r.DPI = strings.TrimSpace(r.DPI)
	r.Direccion = strings.TrimSpace(r.Direccion)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type ActualizarEmpleadoRequest struct {
	Nombre    string  `json:"nombre" validate:"required,max=100"`
	Apellido  string  `json:"apellido" validate:"required,max=100"`
	Direccion string  `json:"direccion" validate:"required,max=255"`
	Telefono  *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	IDPuesto  int64   `json:"id_puesto" validate:"required,gt=0"`
	IDRol     int64   `json:"id_rol" validate:"required,gt=0"`
}

func (r *ActualizarEmpleadoRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellido = strings.TrimSpace(r.Apellido)
	r.Direccion = strings.TrimSpace(r.Direccion)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type ActualizarSalarioRequest struct {
	SalarioNuevo float64 `json:"salario_nuevo" validate:"gte=0"`
	Motivo       string  `json:"motivo" validate:"required"`
}

type DarDeBajaRequest struct {
	FechaFin string `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	Motivo   string `json:"motivo" validate:"required,oneof=DESPIDO_JUSTIFICADO DESPIDO_INJUSTIFICADO RENUNCIA MUTUO_ACUERDO FALLECIMIENTO"`
}

/* =======================================================
   RESPONSE ROWS (proyecciones con join)
   ======================================================= */

// EmpleadoDetalle es la fila que devuelven los listados y el getById:
// empleado + puesto + departamento + rol.
type EmpleadoDetalle struct {
	IDEmpleado        int64    `gorm:"column:id_empleado" json:"id_empleado"`
	CodigoEmpleado    string   `gorm:"column:codigo_empleado" json:"codigo_empleado"`
	Nombre            string   `gorm:"column:nombre" json:"nombre"`
	Apellido          string   `gorm:"column:apellido" json:"apellido"`
	DPI               string   `gorm:"column:dpi" json:"dpi"`
	FechaNacimiento   string   `gorm:"column:fecha_nacimiento" json:"fecha_nacimiento"`
	Direccion         string   `gorm:"column:direccion" json:"direccion"`
	Telefono          *string  `gorm:"column:telefono" json:"telefono,omitempty"`
	Email             string   `gorm:"column:email" json:"email"`
	IDPuesto          int64    `gorm:"column:id_puesto" json:"id_puesto"`
	IDRol             int64    `gorm:"column:id_rol" json:"id_rol"`
	FechaContratacion string   `gorm:"column:fecha_contratacion" json:"fecha_contratacion"`
	FechaFinContrato  *string  `gorm:"column:fecha_fin_contrato" json:"fecha_fin_contrato,omitempty"`
	Estado            string   `gorm:"column:estado" json:"estado"`
	SalarioActual     float64  `gorm:"column:salario_actual" json:"salario_actual"`
	Puesto            string   `gorm:"column:puesto" json:"puesto"`
	IDDepartamento    int64    `gorm:"column:id_departamento" json:"id_departamento"`
	Departamento      string   `gorm:"column:departamento" json:"departamento"`
	Rol               string   `gorm:"column:rol" json:"rol"`
}

type HistorialSalarioRow struct {
	IDHistoricoSalario  int64   `gorm:"column:id_historico_salario" json:"id_historico_salario"`
	SalarioAnterior     float64 `gorm:"column:salario_anterior" json:"salario_anterior"`
	SalarioNuevo        float64 `gorm:"column:salario_nuevo" json:"salario_nuevo"`
	FechaCambio         string  `gorm:"column:fecha_cambio" json:"fecha_cambio"`
	Motivo              string  `gorm:"column:motivo" json:"motivo"`
	UsuarioModificacion *string `gorm:"column:usuario_modificacion" json:"usuario_modificacion,omitempty"`
}
