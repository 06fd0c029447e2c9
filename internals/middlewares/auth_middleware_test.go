package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"rrhh_backend/internals/constants"
)

const testSecret = "secreto-de-prueba"

func firmarToken(t *testing.T, id int64, rol string, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":  id,
		"rol": rol,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return token
}

func appConToken(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegido",
		VerifyTokenWithSecret(func() string { return testSecret }),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"id": UserID(c), "rol": UserRol(c)})
		})
	return app
}

func TestVerifyTokenSinToken(t *testing.T) {
	app := appConToken(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protegido", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("sin token: status = %d, quiere 403", resp.StatusCode)
	}
}

func TestVerifyTokenInvalido(t *testing.T) {
	app := appConToken(t)

	cases := []struct {
		name  string
		token string
	}{
		{"basura", "no-es-un-jwt"},
		{"firma equivocada", firmarToken(t, 1, constants.RoleEmpleado, "otro-secreto")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
			req.Header.Set("x-access-token", tc.token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, quiere 401", resp.StatusCode)
			}
		})
	}
}

func TestVerifyTokenExpirado(t *testing.T) {
	app := appConToken(t)

	claims := jwt.MapClaims{
		"id":  int64(1),
		"rol": constants.RoleEmpleado,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("x-access-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("token expirado: status = %d, quiere 401", resp.StatusCode)
	}
}

func TestVerifyTokenValido(t *testing.T) {
	app := appConToken(t)

	// Se acepta tanto x-access-token como Authorization con prefijo Bearer.
	headers := []struct {
		name  string
		key   string
		value string
	}{
		{"x-access-token", "x-access-token", firmarToken(t, 7, constants.RoleEmpleado, testSecret)},
		{"authorization bearer", fiber.HeaderAuthorization, "Bearer " + firmarToken(t, 7, constants.RoleEmpleado, testSecret)},
		{"authorization crudo", fiber.HeaderAuthorization, firmarToken(t, 7, constants.RoleEmpleado, testSecret)},
	}
	for _, h := range headers {
		t.Run(h.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
			req.Header.Set(h.key, h.value)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Errorf("status = %d, quiere 200", resp.StatusCode)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/solo-admin",
		VerifyTokenWithSecret(func() string { return testSecret }),
		IsAdmin(),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	cases := []struct {
		name string
		rol  string
		want int
	}{
		{"empleado rechazado", constants.RoleEmpleado, fiber.StatusForbidden},
		{"administrador pasa", constants.RoleAdministrador, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
			req.Header.Set("x-access-token", firmarToken(t, 1, tc.rol, testSecret))
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("rol %s: status = %d, quiere %d", tc.rol, resp.StatusCode, tc.want)
			}
		})
	}
}
