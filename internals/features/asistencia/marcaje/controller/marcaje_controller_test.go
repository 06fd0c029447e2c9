package controller

import (
	"context"
	"encoding/json"
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
	"rrhh_backend/internals/features/asistencia/marcaje/model"
	"rrhh_backend/internals/helpers/dbtime"
	"rrhh_backend/internals/middlewares"
)

// spFake registra la última invocación y devuelve un resultado fijo.
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
	if err := db.AutoMigrate(&model.MarcajeModel{}); err != nil {
		t.Fatalf("migrando: %v", err)
	}
	return db
}

func conUsuario(id int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middlewares.LocalUserID, id)
		return c.Next()
	}
}

func montarApp(db *gorm.DB, sp database.ProcedureInvoker) *fiber.App {
	ctrl := NewMarcajeController(db, sp)
	app := fiber.New()
	app.Use(conUsuario(5))
	app.Post("/marcajes/entrada", ctrl.RegistrarEntrada)
	app.Post("/marcajes/salida", ctrl.RegistrarSalida)
	app.Patch("/marcajes/:id/estado", ctrl.UpdateEstado)
	return app
}

func decodificar(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	return body
}

func TestRegistrarEntrada(t *testing.T) {
	db := abrirDB(t)

	t.Run("exito", func(t *testing.T) {
		fake := &spFake{res: database.ProcResult{Resultado: 42, Mensaje: "Entrada registrada"}}
		app := montarApp(db, fake)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/marcajes/entrada", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Errorf("status = %d, quiere 201", resp.StatusCode)
		}
		if fake.lastName != database.SPRegistrarEntrada {
			t.Errorf("procedimiento invocado = %q", fake.lastName)
		}
		if len(fake.lastArgs) != 1 || fake.lastArgs[0].(int64) != 5 {
			t.Errorf("argumentos = %v, quiere [5]", fake.lastArgs)
		}
		body := decodificar(t, resp)
		if body["id"].(float64) != 42 {
			t.Errorf("id generado = %v, quiere 42", body["id"])
		}
	})

	t.Run("marcaje abierto rechazado por el procedimiento", func(t *testing.T) {
		fake := &spFake{res: database.ProcResult{Resultado: 0, Mensaje: "Ya existe un marcaje abierto"}}
		app := montarApp(db, fake)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/marcajes/entrada", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		body := decodificar(t, resp)
		if body["message"] != "Ya existe un marcaje abierto" {
			t.Errorf("mensaje = %v", body["message"])
		}
	})
}

func TestRegistrarSalidaSinEntrada(t *testing.T) {
	db := abrirDB(t)
	fake := &spFake{res: database.ProcResult{Resultado: 0, Mensaje: "No hay marcaje abierto"}}
	app := montarApp(db, fake)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/marcajes/salida", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, quiere 400", resp.StatusCode)
	}
	if fake.lastName != database.SPRegistrarSalida {
		t.Errorf("procedimiento invocado = %q", fake.lastName)
	}
}

func TestUpdateEstado(t *testing.T) {
	db := abrirDB(t)
	app := montarApp(db, &spFake{})

	entrada, _ := dbtime.Parse("08:00:00")
	marcaje := model.MarcajeModel{
		IDEmpleado:  5,
		Fecha:       time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		HoraEntrada: entrada,
		Estado:      constants.MarcajePendiente,
	}
	if err := db.Create(&marcaje).Error; err != nil {
		t.Fatalf("sembrando marcaje: %v", err)
	}

	patch := func(t *testing.T, path, payload string) *http.Response {
		t.Helper()
		req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	t.Run("estado fuera del catalogo", func(t *testing.T) {
		resp := patch(t, "/marcajes/1/estado", `{"estado":"INVENTADO"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		var m model.MarcajeModel
		db.First(&m, marcaje.IDMarcaje)
		if m.Estado != constants.MarcajePendiente {
			t.Errorf("estado mutado a %q con payload inválido", m.Estado)
		}
	})

	t.Run("aprobacion", func(t *testing.T) {
		resp := patch(t, "/marcajes/1/estado", `{"estado":"APROBADO","observaciones":"ok"}`)
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, quiere 200", resp.StatusCode)
		}
		var m model.MarcajeModel
		db.First(&m, marcaje.IDMarcaje)
		if m.Estado != constants.MarcajeAprobado {
			t.Errorf("estado = %q, quiere APROBADO", m.Estado)
		}
		if m.Observaciones == nil || *m.Observaciones != "ok" {
			t.Errorf("observaciones no persistidas: %v", m.Observaciones)
		}
	})

	t.Run("marcaje inexistente", func(t *testing.T) {
		resp := patch(t, "/marcajes/999/estado", `{"estado":"APROBADO"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
	})
}
