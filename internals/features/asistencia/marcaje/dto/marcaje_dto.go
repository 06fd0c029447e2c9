package dto

// ActualizarEstadoRequest cambia el estado de revisión de un marcaje.
type ActualizarEstadoRequest struct {
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones"`
}

// MarcajeRow es la fila que ve el propio empleado.
type MarcajeRow struct {
	IDMarcaje       int64    `json:"id_marcaje" gorm:"column:id_marcaje"`
	Fecha           string   `json:"fecha" gorm:"column:fecha"`
	HoraEntrada     string   `json:"hora_entrada" gorm:"column:hora_entrada"`
	HoraSalida      *string  `json:"hora_salida" gorm:"column:hora_salida"`
	HorasTrabajadas *float64 `json:"horas_trabajadas" gorm:"column:horas_trabajadas"`
	Observaciones   *string  `json:"observaciones" gorm:"column:observaciones"`
	Estado          string   `json:"estado" gorm:"column:estado"`
}

// MarcajeEmpleadoRow agrega los datos del empleado (listados de administración).
type MarcajeEmpleadoRow struct {
	MarcajeRow
	IDEmpleado     int64  `json:"id_empleado" gorm:"column:id_empleado"`
	CodigoEmpleado string `json:"codigo_empleado" gorm:"column:codigo_empleado"`
	NombreEmpleado string `json:"nombre_empleado" gorm:"column:nombre_empleado"`
}
