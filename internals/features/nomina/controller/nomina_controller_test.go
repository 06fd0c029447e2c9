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
	"rrhh_backend/internals/features/nomina/model"
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
	if err := db.AutoMigrate(&model.PeriodoNominaModel{}, &model.NominaModel{}); err != nil {
		t.Fatalf("migrando: %v", err)
	}
	return db
}

func montarApp(db *gorm.DB, sp database.ProcedureInvoker) *fiber.App {
	ctrl := NewNominaController(db, sp)
	app := fiber.New()
	app.Post("/nomina/periodos", ctrl.CrearPeriodo)
	app.Get("/nomina/periodos/:id", ctrl.GetPeriodoByID)
	app.Post("/nomina/periodos/:id/procesar", ctrl.ProcesarPeriodo)
	app.Patch("/nomina/nominas/:id/pagar", ctrl.PagarNomina)
	return app
}

func hacer(t *testing.T, app *fiber.App, method, path, payload string) *http.Response {
	t.Helper()
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
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

func TestCrearPeriodo(t *testing.T) {
	t.Run("tipo fuera del catalogo", func(t *testing.T) {
		db := abrirDB(t)
		fake := &spFake{}
		app := montarApp(db, fake)
		resp := hacer(t, app, http.MethodPost, "/nomina/periodos",
			`{"tipo":"DIARIO","fecha_inicio":"2026-09-01","fecha_fin":"2026-09-15"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if fake.lastName != "" {
			t.Error("el procedimiento no debe invocarse con tipo inválido")
		}
	})

	t.Run("inicio no anterior al fin", func(t *testing.T) {
		db := abrirDB(t)
		fake := &spFake{}
		app := montarApp(db, fake)
		resp := hacer(t, app, http.MethodPost, "/nomina/periodos",
			`{"tipo":"QUINCENAL","fecha_inicio":"2026-09-15","fecha_fin":"2026-09-01"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if got := mensaje(t, resp); got != "La fecha de inicio debe ser anterior a la fecha de fin" {
			t.Errorf("mensaje = %q", got)
		}
		if fake.lastName != "" {
			t.Error("nada debe persistirse con el rango invertido")
		}
		var n int64
		db.Table("periodos_nomina").Count(&n)
		if n != 0 {
			t.Errorf("se persistieron %d períodos", n)
		}
	})

	t.Run("periodo valido", func(t *testing.T) {
		db := abrirDB(t)
		fake := &spFake{res: database.ProcResult{Resultado: 3, Mensaje: "Período creado"}}
		app := montarApp(db, fake)
		resp := hacer(t, app, http.MethodPost, "/nomina/periodos",
			`{"tipo":"quincenal","fecha_inicio":"2026-09-01","fecha_fin":"2026-09-15"}`)
		if resp.StatusCode != fiber.StatusCreated {
			t.Errorf("status = %d, quiere 201", resp.StatusCode)
		}
		if fake.lastName != database.SPCrearPeriodoNomina {
			t.Errorf("procedimiento invocado = %q", fake.lastName)
		}
		// El tipo se normaliza a mayúsculas antes de llegar al procedimiento.
		if fake.lastArgs[0].(string) != constants.PeriodoQuincenal {
			t.Errorf("tipo = %v", fake.lastArgs[0])
		}
	})
}

func TestProcesarPeriodoInexistente(t *testing.T) {
	db := abrirDB(t)
	fake := &spFake{}
	app := montarApp(db, fake)

	resp := hacer(t, app, http.MethodPost, "/nomina/periodos/99/procesar", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, quiere 404", resp.StatusCode)
	}
	if fake.lastName != "" {
		t.Error("el procedimiento no debe invocarse sin período")
	}
}

func TestPagarNomina(t *testing.T) {
	db := abrirDB(t)

	periodo := model.PeriodoNominaModel{
		Tipo:        constants.PeriodoQuincenal,
		FechaInicio: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Estado:      constants.PeriodoProcesado,
	}
	if err := db.Create(&periodo).Error; err != nil {
		t.Fatal(err)
	}

	pendiente := model.NominaModel{
		IDPeriodo: periodo.IDPeriodo, IDEmpleado: 5,
		SalarioBase: 5000, SalarioDevengado: 5000, SueldoLiquido: 4500,
		Estado: constants.NominaPendiente,
	}
	pagada := model.NominaModel{
		IDPeriodo: periodo.IDPeriodo, IDEmpleado: 6,
		SalarioBase: 5000, SalarioDevengado: 5000, SueldoLiquido: 4500,
		Estado: constants.NominaPagada,
	}
	if err := db.Create(&pendiente).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&pagada).Error; err != nil {
		t.Fatal(err)
	}

	t.Run("fecha de pago requerida", func(t *testing.T) {
		fake := &spFake{}
		app := montarApp(db, fake)
		ruta := fmt.Sprintf("/nomina/nominas/%d/pagar", pendiente.IDNomina)
		resp := hacer(t, app, http.MethodPatch, ruta, `{"fecha_pago":"no-es-fecha"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if got := mensaje(t, resp); got != "Se requiere una fecha de pago válida" {
			t.Errorf("mensaje = %q", got)
		}
	})

	t.Run("nomina inexistente", func(t *testing.T) {
		app := montarApp(db, &spFake{})
		resp := hacer(t, app, http.MethodPatch, "/nomina/nominas/999/pagar", `{"fecha_pago":"2026-08-20"}`)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("status = %d, quiere 404", resp.StatusCode)
		}
	})

	t.Run("segundo pago rechazado", func(t *testing.T) {
		fake := &spFake{}
		app := montarApp(db, fake)
		ruta := fmt.Sprintf("/nomina/nominas/%d/pagar", pagada.IDNomina)
		resp := hacer(t, app, http.MethodPatch, ruta, `{"fecha_pago":"2026-08-20"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if fake.lastName != "" {
			t.Error("el procedimiento no debe invocarse sobre una nómina ya pagada")
		}
	})

	t.Run("pago valido llega al procedimiento", func(t *testing.T) {
		fake := &spFake{res: database.ProcResult{Resultado: 1, Mensaje: "Nomina pagada"}}
		app := montarApp(db, fake)
		ruta := fmt.Sprintf("/nomina/nominas/%d/pagar", pendiente.IDNomina)
		resp := hacer(t, app, http.MethodPatch, ruta, `{"fecha_pago":"2026-08-20"}`)
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, quiere 200", resp.StatusCode)
		}
		if fake.lastName != database.SPPagarNomina {
			t.Errorf("procedimiento invocado = %q", fake.lastName)
		}
	})
}
