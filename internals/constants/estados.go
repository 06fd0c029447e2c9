package constants

// Estados de empleado
const (
	EmpleadoActivo     = "ACTIVO"
	EmpleadoInactivo   = "INACTIVO"
	EmpleadoSuspendido = "SUSPENDIDO"
	EmpleadoDespedido  = "DESPEDIDO"
	EmpleadoRenuncio   = "RENUNCIADO"
)

// Estados de marcaje
const (
	MarcajePendiente = "PENDIENTE"
	MarcajeAprobado  = "APROBADO"
	MarcajeRechazado = "RECHAZADO"
)

// Estados de solicitud de vacaciones
const (
	VacacionSolicitada = "SOLICITADO"
	VacacionAprobada   = "APROBADO"
	VacacionRechazada  = "RECHAZADO"
	VacacionCancelada  = "CANCELADO"
	VacacionCompletada = "COMPLETADO"
)

// Estados de período vacacional
const (
	PeriodoVacacionalActivo    = "ACTIVO"
	PeriodoVacacionalCerrado   = "CERRADO"
	PeriodoVacacionalLiquidado = "LIQUIDADO"
)

// Tipos y estados de período de nómina
const (
	PeriodoSemanal   = "SEMANAL"
	PeriodoQuincenal = "QUINCENAL"
	PeriodoMensual   = "MENSUAL"

	PeriodoAbierto   = "ABIERTO"
	PeriodoCerrado   = "CERRADO"
	PeriodoProcesado = "PROCESADO"
)

// Estados de nómina y liquidación
const (
	NominaPendiente = "PENDIENTE"
	NominaPagada    = "PAGADO"
	NominaAnulada   = "ANULADO"

	LiquidacionCalculada = "CALCULADO"
	LiquidacionPagada    = "PAGADO"
	LiquidacionAnulada   = "ANULADO"
)

// Motivos de baja / liquidación
var MotivosBaja = []string{
	"DESPIDO_JUSTIFICADO",
	"DESPIDO_INJUSTIFICADO",
	"RENUNCIA",
	"MUTUO_ACUERDO",
	"FALLECIMIENTO",
}

func MotivoBajaValido(m string) bool {
	for _, v := range MotivosBaja {
		if v == m {
			return true
		}
	}
	return false
}

// EstadoMarcajeValido valida el whitelist de estados admin para un marcaje.
func EstadoMarcajeValido(e string) bool {
	return e == MarcajePendiente || e == MarcajeAprobado || e == MarcajeRechazado
}

// TipoPeriodoValido valida el tipo de un período de nómina.
func TipoPeriodoValido(t string) bool {
	return t == PeriodoSemanal || t == PeriodoQuincenal || t == PeriodoMensual
}
