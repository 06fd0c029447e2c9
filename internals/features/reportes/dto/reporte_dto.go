package dto

// PeriodoReporte encabeza el reporte de nómina por período.
type PeriodoReporte struct {
	Tipo        string `json:"tipo" gorm:"column:tipo"`
	FechaInicio string `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin    string `json:"fecha_fin" gorm:"column:fecha_fin"`
}

type NominaReporteRow struct {
	IDNomina            int64   `json:"id_nomina" gorm:"column:id_nomina"`
	CodigoEmpleado      string  `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado      string  `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	Puesto              string  `json:"puesto" gorm:"column:puesto"`
	Departamento        string  `json:"departamento" gorm:"column:departamento"`
	SalarioBase         float64 `json:"salario_base" gorm:"column:salario_base"`
	SalarioDevengado    float64 `json:"salario_devengado" gorm:"column:salario_devengado"`
	TotalDeducciones    float64 `json:"total_deducciones" gorm:"column:total_deducciones"`
	TotalBonificaciones float64 `json:"total_bonificaciones" gorm:"column:total_bonificaciones"`
	SueldoLiquido       float64 `json:"sueldo_liquido" gorm:"column:sueldo_liquido"`
	Estado              string  `json:"estado" gorm:"column:estado"`
}

type NominaTotales struct {
	TotalEmpleados       int64   `json:"total_empleados" gorm:"column:total_empleados"`
	TotalSalarioBase     float64 `json:"total_salario_base" gorm:"column:total_salario_base"`
	TotalSalarioDevengado float64 `json:"total_salario_devengado" gorm:"column:total_salario_devengado"`
	TotalDeducciones     float64 `json:"total_deducciones" gorm:"column:total_deducciones"`
	TotalBonificaciones  float64 `json:"total_bonificaciones" gorm:"column:total_bonificaciones"`
	TotalSueldoLiquido   float64 `json:"total_sueldo_liquido" gorm:"column:total_sueldo_liquido"`
}

type ReporteNominaPeriodo struct {
	Periodo PeriodoReporte     `json:"periodo"`
	Nominas []NominaReporteRow `json:"nominas"`
	Totales NominaTotales      `json:"totales"`
}

type MarcajeReporteRow struct {
	IDMarcaje       int64    `json:"id_marcaje" gorm:"column:id_marcaje"`
	CodigoEmpleado  string   `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado  string   `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	Puesto          string   `json:"puesto" gorm:"column:puesto"`
	Fecha           string   `json:"fecha" gorm:"column:fecha"`
	HoraEntrada     string   `json:"hora_entrada" gorm:"column:hora_entrada"`
	HoraSalida      *string  `json:"hora_salida" gorm:"column:hora_salida"`
	HorasTrabajadas *float64 `json:"horas_trabajadas" gorm:"column:horas_trabajadas"`
	Estado          string   `json:"estado" gorm:"column:estado"`
}

type MarcajeResumenRow struct {
	IDEmpleado          int64   `json:"id_empleado" gorm:"column:id_empleado"`
	NombreEmpleado      string  `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	TotalMarcajes       int64   `json:"total_marcajes" gorm:"column:total_marcajes"`
	TotalHorasAprobadas float64 `json:"total_horas_aprobadas" gorm:"column:total_horas_aprobadas"`
}

type ReporteMarcajesDepartamento struct {
	Departamento     string              `json:"departamento"`
	FechaInicio      string              `json:"fechaInicio"`
	FechaFin         string              `json:"fechaFin"`
	Marcajes         []MarcajeReporteRow `json:"marcajes"`
	ResumenEmpleados []MarcajeResumenRow `json:"resumenEmpleados"`
}

type VacacionReporteRow struct {
	IDVacacion     int64   `json:"id_vacacion" gorm:"column:id_vacacion"`
	CodigoEmpleado string  `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado string  `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	Puesto         string  `json:"puesto" gorm:"column:puesto"`
	FechaInicio    string  `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin       string  `json:"fecha_fin" gorm:"column:fecha_fin"`
	DiasTomados    int     `json:"dias_tomados" gorm:"column:dias_tomados"`
	Estado         string  `json:"estado" gorm:"column:estado"`
	Observaciones  *string `json:"observaciones" gorm:"column:observaciones"`
}

type VacacionResumenRow struct {
	IDEmpleado           int64  `json:"id_empleado" gorm:"column:id_empleado"`
	NombreEmpleado       string `json:"nombre_empleado" gorm:"column:nombre_empleado"`
	DiasCorrespondientes *int   `json:"dias_correspondientes" gorm:"column:dias_correspondientes"`
	DiasTomados          *int   `json:"dias_tomados" gorm:"column:dias_tomados"`
	DiasPendientes       *int   `json:"dias_pendientes" gorm:"column:dias_pendientes"`
}

type ReporteVacacionesDepartamento struct {
	FechaInicio      string               `json:"fechaInicio"`
	FechaFin         string               `json:"fechaFin"`
	Estado           string               `json:"estado,omitempty"`
	Vacaciones       []VacacionReporteRow `json:"vacaciones"`
	ResumenEmpleados []VacacionResumenRow `json:"resumenEmpleados"`
}
