package dto

import "strings"

type SolicitarVacacionesRequest struct {
	FechaInicio   string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin      string `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	Observaciones string `json:"observaciones"`
}

func (r *SolicitarVacacionesRequest) Normalize() {
	r.FechaInicio = strings.TrimSpace(r.FechaInicio)
	r.FechaFin = strings.TrimSpace(r.FechaFin)
	r.Observaciones = strings.TrimSpace(r.Observaciones)
}

type RechazarVacacionesRequest struct {
	Observaciones string `json:"observaciones"`
}

// SolicitudRow es la vista del propio empleado sobre sus solicitudes.
type SolicitudRow struct {
	IDVacacion    int64   `json:"id_vacacion" gorm:"column:id_vacacion"`
	FechaInicio   string  `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin      string  `json:"fecha_fin" gorm:"column:fecha_fin"`
	DiasTomados   int     `json:"dias_tomados" gorm:"column:dias_tomados"`
	Estado        string  `json:"estado" gorm:"column:estado"`
	Observaciones *string `json:"observaciones" gorm:"column:observaciones"`
	FechaCreacion string  `json:"fecha_creacion" gorm:"column:fecha_creacion"`
}

// PeriodoRow expone el período vacacional tal como lo mantienen los
// procedimientos almacenados.
type PeriodoRow struct {
	IDPeriodoVacacional  int64  `json:"id_periodo_vacacional" gorm:"column:id_periodo_vacacional"`
	FechaInicio          string `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	FechaFin             string `json:"fecha_fin" gorm:"column:fecha_fin"`
	DiasCorrespondientes int    `json:"dias_correspondientes" gorm:"column:dias_correspondientes"`
	DiasTomados          int    `json:"dias_tomados" gorm:"column:dias_tomados"`
	DiasPendientes       int    `json:"dias_pendientes" gorm:"column:dias_pendientes"`
	Estado               string `json:"estado" gorm:"column:estado"`
}

// SolicitudEmpleadoRow agrega los datos del empleado (listados de administración).
type SolicitudEmpleadoRow struct {
	SolicitudRow
	IDEmpleado     int64  `json:"id_empleado" gorm:"column:id_empleado"`
	CodigoEmpleado string `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado string `json:"nombre_empleado" gorm:"column:nombre_empleado"`
}
