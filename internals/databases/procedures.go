package database

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Nombres de los procedimientos almacenados que implementan las reglas de
// negocio (prorrateos, indemnización, invariantes de marcaje, etc.). La capa
// de aplicación los trata como una frontera transaccional opaca.
const (
	SPCrearEmpleado          = "sp_crear_empleado"
	SPActualizarEmpleado     = "sp_actualizar_empleado"
	SPActualizarSalario      = "sp_actualizar_salario"
	SPBajaEmpleado           = "sp_baja_empleado"
	SPRegistrarEntrada       = "sp_registrar_entrada"
	SPRegistrarSalida        = "sp_registrar_salida"
	SPSolicitarVacaciones    = "sp_solicitar_vacaciones"
	SPAprobarVacaciones      = "sp_aprobar_vacaciones"
	SPCrearPeriodoNomina     = "sp_crear_periodo_nomina"
	SPProcesarPeriodoNomina  = "sp_procesar_periodo_nomina"
	SPCalcularNominaEmpleado = "sp_calcular_nomina_empleado"
	SPPagarNomina            = "sp_pagar_nomina"
	SPCalcularLiquidacion    = "sp_calcular_liquidacion"
)

// ProcResult es la fila (resultado, mensaje) que devuelve todo procedimiento.
// resultado > 0 indica éxito y transporta el id generado cuando aplica.
type ProcResult struct {
	Resultado int64  `gorm:"column:resultado"`
	Mensaje   string `gorm:"column:mensaje"`
}

func (r ProcResult) Success() bool { return r.Resultado > 0 }

// GeneratedID devuelve el id generado por el procedimiento, 0 si falló.
func (r ProcResult) GeneratedID() int64 {
	if r.Resultado > 0 {
		return r.Resultado
	}
	return 0
}

// ProcedureInvoker abstrae la frontera de procedimientos almacenados para que
// los controllers puedan probarse con un fake.
type ProcedureInvoker interface {
	Invoke(ctx context.Context, name string, args ...interface{}) (ProcResult, error)
}

type ProcedureClient struct {
	db *gorm.DB
}

func NewProcedureClient(db *gorm.DB) *ProcedureClient {
	return &ProcedureClient{db: db}
}

// Invoke ejecuta el procedimiento sobre UNA sola conexión del pool; Connection
// garantiza la liberación en todo camino de salida (éxito, fallo de dominio o
// error del driver), que es lo que exige la frontera transaccional.
func (p *ProcedureClient) Invoke(ctx context.Context, name string, args ...interface{}) (ProcResult, error) {
	var res ProcResult
	err := p.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")
		return tx.Raw("SELECT * FROM "+name+"("+placeholders+")", args...).Scan(&res).Error
	})
	return res, err
}
