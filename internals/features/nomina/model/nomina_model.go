package model

import "time"

// NominaModel lo calculan los procedimientos almacenados; la API lo consulta y
// sólo muta el estado de pago a través de sp_pagar_nomina.
type NominaModel struct {
	IDNomina            int64      `json:"id_nomina" gorm:"column:id_nomina;primaryKey;autoIncrement"`
	IDPeriodo           int64      `json:"id_periodo" gorm:"column:id_periodo;not null;index"`
	IDEmpleado          int64      `json:"id_empleado" gorm:"column:id_empleado;not null;index"`
	SalarioBase         float64    `json:"salario_base" gorm:"column:salario_base;type:numeric(12,2);not null"`
	HorasTrabajadas     float64    `json:"horas_trabajadas" gorm:"column:horas_trabajadas;type:numeric(8,2);not null"`
	SalarioDevengado    float64    `json:"salario_devengado" gorm:"column:salario_devengado;type:numeric(12,2);not null"`
	TotalDeducciones    float64    `json:"total_deducciones" gorm:"column:total_deducciones;type:numeric(12,2);not null"`
	TotalBonificaciones float64    `json:"total_bonificaciones" gorm:"column:total_bonificaciones;type:numeric(12,2);not null"`
	SueldoLiquido       float64    `json:"sueldo_liquido" gorm:"column:sueldo_liquido;type:numeric(12,2);not null"`
	Estado              string     `json:"estado" gorm:"column:estado;type:varchar(20);not null;default:'PENDIENTE'"`
	FechaPago           *time.Time `json:"fecha_pago,omitempty" gorm:"column:fecha_pago;type:date"`
}

func (NominaModel) TableName() string {
	return "nominas"
}

type DeduccionNominaModel struct {
	IDDeduccionNomina int64   `json:"id_deduccion_nomina" gorm:"column:id_deduccion_nomina;primaryKey;autoIncrement"`
	IDNomina          int64   `json:"id_nomina" gorm:"column:id_nomina;not null;index"`
	IDTipoDeduccion   int64   `json:"id_tipo_deduccion" gorm:"column:id_tipo_deduccion;not null"`
	Monto             float64 `json:"monto" gorm:"column:monto;type:numeric(12,2);not null"`
}

func (DeduccionNominaModel) TableName() string {
	return "deducciones_nomina"
}

type BonificacionNominaModel struct {
	IDBonificacionNomina int64   `json:"id_bonificacion_nomina" gorm:"column:id_bonificacion_nomina;primaryKey;autoIncrement"`
	IDNomina             int64   `json:"id_nomina" gorm:"column:id_nomina;not null;index"`
	IDTipoBonificacion   int64   `json:"id_tipo_bonificacion" gorm:"column:id_tipo_bonificacion;not null"`
	Monto                float64 `json:"monto" gorm:"column:monto;type:numeric(12,2);not null"`
}

func (BonificacionNominaModel) TableName() string {
	return "bonificaciones_nomina"
}

type TipoDeduccionModel struct {
	IDTipoDeduccion int64   `json:"id_tipo_deduccion" gorm:"column:id_tipo_deduccion;primaryKey;autoIncrement"`
	Nombre          string  `json:"nombre" gorm:"column:nombre;type:varchar(100);not null"`
	Descripcion     *string `json:"descripcion,omitempty" gorm:"column:descripcion;type:text"`
}

func (TipoDeduccionModel) TableName() string {
	return "tipos_deducciones"
}

type TipoBonificacionModel struct {
	IDTipoBonificacion int64   `json:"id_tipo_bonificacion" gorm:"column:id_tipo_bonificacion;primaryKey;autoIncrement"`
	Nombre             string  `json:"nombre" gorm:"column:nombre;type:varchar(100);not null"`
	Descripcion        *string `json:"descripcion,omitempty" gorm:"column:descripcion;type:text"`
}

func (TipoBonificacionModel) TableName() string {
	return "tipos_bonificaciones"
}
