package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"rrhh_backend/internals/constants"
)

// IsAdmin exige rol Administrador; corre siempre después de VerifyToken.
func IsAdmin() fiber.Handler {
	return OnlyRoles(constants.ErrSoloAdmin, constants.RoleAdministrador)
}

// OnlyRoles valida que el rol del contexto esté dentro de los permitidos.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, ok := c.Locals(LocalUserRol).(string)
		if !ok || rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No autenticado",
			})
		}

		for _, allowed := range roles {
			if rol == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = constants.ErrSoloAdmin
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": forbiddenMessage,
		})
	}
}
