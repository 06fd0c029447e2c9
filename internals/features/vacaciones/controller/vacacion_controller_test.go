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
	"rrhh_backend/internals/features/vacaciones/model"
	helper "rrhh_backend/internals/helpers"
	"rrhh_backend/internals/middlewares"
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
	if err := db.AutoMigrate(&model.VacacionModel{}, &model.PeriodoVacacionalModel{}); err != nil {
		t.Fatalf("migrando: %v", err)
	}
	return db
}

func montarApp(db *gorm.DB, sp database.ProcedureInvoker) *fiber.App {
	ctrl := NewVacacionController(db, sp)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middlewares.LocalUserID, int64(5))
		return c.Next()
	})
	app.Post("/vacaciones/solicitar", ctrl.Solicitar)
	app.Patch("/vacaciones/solicitudes/:id/rechazar", ctrl.Rechazar)
	app.Patch("/vacaciones/solicitudes/:id/aprobar", ctrl.Aprobar)
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path, payload string) *http.Response {
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

// Próximo lunes estrictamente futuro, para que los casos no dependan del día
// en que corre la suite.
func proximoLunes() time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func sembrarSaldo(t *testing.T, db *gorm.DB, dias int) {
	t.Helper()
	periodo := model.PeriodoVacacionalModel{
		IDEmpleado:           5,
		FechaInicio:          time.Now().AddDate(-1, 0, 0),
		FechaFin:             time.Now().AddDate(0, 0, -1),
		DiasCorrespondientes: 15,
		DiasTomados:          15 - dias,
		DiasPendientes:       dias,
		Estado:               constants.PeriodoVacacionalActivo,
	}
	if err := db.Create(&periodo).Error; err != nil {
		t.Fatalf("sembrando período: %v", err)
	}
}

func TestSolicitarVacaciones(t *testing.T) {
	lunes := proximoLunes()
	viernes := lunes.AddDate(0, 0, 4)
	formato := func(d time.Time) string { return d.Format(helper.FechaLayout) }

	t.Run("rango invertido", func(t *testing.T) {
		db := abrirDB(t)
		app := montarApp(db, &spFake{})
		payload := fmt.Sprintf(`{"fecha_inicio":%q,"fecha_fin":%q}`, formato(viernes), formato(lunes))
		resp := postJSON(t, app, http.MethodPost, "/vacaciones/solicitar", payload)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if got := mensaje(t, resp); got != "La fecha de inicio debe ser anterior a la fecha de fin" {
			t.Errorf("mensaje = %q", got)
		}
	})

	t.Run("inicio no futuro", func(t *testing.T) {
		db := abrirDB(t)
		app := montarApp(db, &spFake{})
		hoy := time.Now()
		payload := fmt.Sprintf(`{"fecha_inicio":%q,"fecha_fin":%q}`,
			formato(hoy), formato(hoy.AddDate(0, 0, 5)))
		resp := postJSON(t, app, http.MethodPost, "/vacaciones/solicitar", payload)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if got := mensaje(t, resp); got != "La fecha de inicio debe ser futura" {
			t.Errorf("mensaje = %q", got)
		}
	})

	t.Run("saldo insuficiente", func(t *testing.T) {
		db := abrirDB(t)
		sembrarSaldo(t, db, 3) // pide 5 hábiles, tiene 3
		fake := &spFake{res: database.ProcResult{Resultado: 1}}
		app := montarApp(db, fake)
		payload := fmt.Sprintf(`{"fecha_inicio":%q,"fecha_fin":%q}`, formato(lunes), formato(viernes))
		resp := postJSON(t, app, http.MethodPost, "/vacaciones/solicitar", payload)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		if fake.lastName != "" {
			t.Error("el procedimiento no debe invocarse cuando el saldo no alcanza")
		}
	})

	t.Run("solicitud valida", func(t *testing.T) {
		db := abrirDB(t)
		sembrarSaldo(t, db, 10)
		fake := &spFake{res: database.ProcResult{Resultado: 9, Mensaje: "Solicitud registrada"}}
		app := montarApp(db, fake)
		payload := fmt.Sprintf(`{"fecha_inicio":%q,"fecha_fin":%q,"observaciones":"viaje"}`,
			formato(lunes), formato(viernes))
		resp := postJSON(t, app, http.MethodPost, "/vacaciones/solicitar", payload)
		if resp.StatusCode != fiber.StatusCreated {
			t.Errorf("status = %d, quiere 201", resp.StatusCode)
		}
		if fake.lastName != database.SPSolicitarVacaciones {
			t.Errorf("procedimiento invocado = %q", fake.lastName)
		}
		if len(fake.lastArgs) != 4 || fake.lastArgs[0].(int64) != 5 {
			t.Errorf("argumentos = %v", fake.lastArgs)
		}
	})
}

func TestRechazarVacaciones(t *testing.T) {
	db := abrirDB(t)
	app := montarApp(db, &spFake{})

	solicitud := model.VacacionModel{
		IDEmpleado:  5,
		FechaInicio: proximoLunes(),
		FechaFin:    proximoLunes().AddDate(0, 0, 4),
		DiasTomados: 5,
		Estado:      constants.VacacionSolicitada,
	}
	if err := db.Create(&solicitud).Error; err != nil {
		t.Fatalf("sembrando solicitud: %v", err)
	}
	ruta := fmt.Sprintf("/vacaciones/solicitudes/%d/rechazar", solicitud.IDVacacion)

	t.Run("sin observaciones no muta", func(t *testing.T) {
		resp := postJSON(t, app, http.MethodPatch, ruta, `{"observaciones":""}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
		var v model.VacacionModel
		db.First(&v, solicitud.IDVacacion)
		if v.Estado != constants.VacacionSolicitada {
			t.Errorf("estado mutado a %q sin observaciones", v.Estado)
		}
	})

	t.Run("con observaciones", func(t *testing.T) {
		resp := postJSON(t, app, http.MethodPatch, ruta, `{"observaciones":"fechas de cierre"}`)
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, quiere 200", resp.StatusCode)
		}
		var v model.VacacionModel
		db.First(&v, solicitud.IDVacacion)
		if v.Estado != constants.VacacionRechazada {
			t.Errorf("estado = %q, quiere RECHAZADO", v.Estado)
		}
	})

	t.Run("ya resuelta no se vuelve a rechazar", func(t *testing.T) {
		resp := postJSON(t, app, http.MethodPatch, ruta, `{"observaciones":"otra vez"}`)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, quiere 400", resp.StatusCode)
		}
	})
}

func TestAprobarVacaciones(t *testing.T) {
	db := abrirDB(t)
	fake := &spFake{res: database.ProcResult{Resultado: 0, Mensaje: "La solicitud no está en estado SOLICITADO"}}
	app := montarApp(db, fake)

	resp := postJSON(t, app, http.MethodPatch, "/vacaciones/solicitudes/1/aprobar", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, quiere 400", resp.StatusCode)
	}
	if fake.lastName != database.SPAprobarVacaciones {
		t.Errorf("procedimiento invocado = %q", fake.lastName)
	}
}
