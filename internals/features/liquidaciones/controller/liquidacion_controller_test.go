package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rrhh_backend/internals/constants"
	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/liquidaciones/model"
	helper "rrhh_backend/internals/helpers"
)

type spFake struct {
	res      database.ProcResult
	err      error
	lastName string
	lastArgs []interface{}
}

func (f *spFake) Invoke(_ context.Context, name string, args ...interface{}) (database.ProcResult, error) {
	f.lastName = name
	f.lastArgs = args
	return f.res, f.err
}

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abriendo sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.LiquidacionModel{}); err != nil {
		t.Fatalf("migrando: %v", err)
	}
	return db
}

func montarApp(db *gorm.DB, sp database.ProcedureInvoker) *fiber.App {
	ctrl := NewLiquidacionController(db, sp)
	app := fiber.New()
	app.Post("/liquidaciones", ctrl.Calcular)
	app.Patch("/liquidaciones/:id/pagar", ctrl.Pagar)
	return app
}

func hacer(t *testing.T, app *fiber.App, method, path, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func mensaje(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	m, _ := body["message"].(string)
	return m
}

func TestCalcularLiquidacion(t *testing.T) {
	ayer := time.Now().AddDate(0, 0, -1).Format(helper.FechaLayout)
	manana := time.Now().AddDate(0, 0, 1).Format(helper.FechaLayout)

	t.Run("fecha futura rechazada", func(t *testing.T) {
		fake := &spFake{}
		app := montarApp(abrirDB(t), fake)
		payload := fmt.Sprintf(`{"id_empleado":5,"fecha_liquidacion":%q,"motivo":"RENUNCIA"}`, manana)
		resp := hacer(t, app, http.MethodPost, "/liquidaciones", payload)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if got := mensaje(t, resp); got != "La fecha de liquidación no puede ser futura" {
			t.Errorf("mensaje = %q", got)
		}
		if fake.lastName != "" {
			t.Error("el procedimiento no debe invocarse con fecha futura")
		}
	})

	t.Run("motivo fuera del catalogo", func(t *testing.T) {
		fake := &spFake{}
		app := montarApp(abrirDB(t), fake)
		payload := fmt.Sprintf(`{"id_empleado":5,"fecha_liquidacion":%q,"motivo":"ABANDONO"}`, ayer)
		resp := hacer(t, app, http.MethodPost, "/liquidaciones", payload)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
	})

	t.Run("calculo valido", func(t *testing.T) {
		fake := &spFake{res: database.ProcResult{Resultado: 11, Mensaje: "Liquidación calculada"}}
		app := montarApp(abrirDB(t), fake)
		payload := fmt.Sprintf(`{"id_empleado":5,"fecha_liquidacion":%q,"motivo":"renuncia"}`, ayer)
		resp := hacer(t, app, http.MethodPost, "/liquidaciones", payload)
		if resp.StatusCode != fiber.StatusCreated {
			t.Errorf("status = %d, quiere 201", resp.StatusCode)
		}
		if fake.lastName != database.SPCalcularLiquidacion {
			t.Errorf("procedimiento invocado = %q", fake.lastName)
		}
		// El motivo se normaliza a mayúsculas.
		if fake.lastArgs[2].(string) != "RENUNCIA" {
			t.Errorf("motivo = %v", fake.lastArgs[2])
		}
	})
}

func TestPagarLiquidacion(t *testing.T) {
	db := abrirDB(t)
	app := montarApp(db, &spFake{})

	calculada := model.LiquidacionModel{
		IDEmpleado:       5,
		FechaLiquidacion: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		Motivo:           "RENUNCIA",
		AnosLaborados:    3.5,
		SalarioPromedio:  5000,
		TotalLiquidacion: 20000,
		Estado:           constants.LiquidacionCalculada,
	}
	if err := db.Create(&calculada).Error; err != nil {
		t.Fatal(err)
	}
	ruta := fmt.Sprintf("/liquidaciones/%d/pagar", calculada.IDLiquidacion)

	t.Run("fecha de pago requerida", func(t *testing.T) {
		resp := hacer(t, app, http.MethodPatch, ruta, `{}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
	})

	t.Run("inexistente", func(t *testing.T) {
		resp := hacer(t, app, http.MethodPatch, "/liquidaciones/999/pagar", `{"fecha_pago":"2026-08-01"}`)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("status = %d, quiere 404", resp.StatusCode)
		}
	})

	t.Run("primer pago", func(t *testing.T) {
		resp := hacer(t, app, http.MethodPatch, ruta, `{"fecha_pago":"2026-08-01","observaciones":"cheque"}`)
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, quiere 200", resp.StatusCode)
		}
		var l model.LiquidacionModel
		db.First(&l, calculada.IDLiquidacion)
		if l.Estado != constants.LiquidacionPagada {
			t.Errorf("estado = %q, quiere PAGADO", l.Estado)
		}
	})

	t.Run("segundo pago rechazado", func(t *testing.T) {
		resp := hacer(t, app, http.MethodPatch, ruta, `{"fecha_pago":"2026-08-02"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if got := mensaje(t, resp); got != "La liquidación ya fue pagada" {
			t.Errorf("mensaje = %q", got)
		}
	})
}
