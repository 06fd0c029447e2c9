package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"rrhh_backend/internals/configs"
	"rrhh_backend/internals/constants"
)

// Claves en Locals pobladas por VerifyToken.
const (
	LocalUserID  = "user_id"
	LocalUserRol = "user_rol"
)

// VerifyToken valida el token de sesión y adjunta {id, rol} al contexto.
// Acepta el token crudo en x-access-token o en Authorization (con o sin
// prefijo "Bearer "). 403 si falta (compatibilidad con el cliente existente),
// 401 si es inválido o expiró. No toca el storage.
func VerifyToken() fiber.Handler {
	return VerifyTokenWithSecret(func() string { return configs.JWTSecret })
}

// VerifyTokenWithSecret permite inyectar el secreto (tests).
func VerifyTokenWithSecret(secret func() string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("x-access-token")
		if token == "" {
			token = c.Get(fiber.HeaderAuthorization)
		}
		if token == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": constants.ErrTokenRequerido,
			})
		}

		token = strings.TrimPrefix(token, "Bearer ")

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret()), nil
		}); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": constants.ErrTokenInvalido,
			})
		}

		id, ok := claims["id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": constants.ErrTokenInvalido,
			})
		}
		rol, _ := claims["rol"].(string)

		c.Locals(LocalUserID, int64(id))
		c.Locals(LocalUserRol, rol)

		return c.Next()
	}
}

// UserID devuelve el id del empleado autenticado (0 si no hay sesión).
func UserID(c *fiber.Ctx) int64 {
	if v, ok := c.Locals(LocalUserID).(int64); ok {
		return v
	}
	return 0
}

// UserRol devuelve el rol del empleado autenticado.
func UserRol(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalUserRol).(string); ok {
		return v
	}
	return ""
}
