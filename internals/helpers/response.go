package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	database "rrhh_backend/internals/databases"
)

// Envoltura uniforme: {success, message?, data?, error?, errors?}

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// Data responde 200 con solo el payload (lecturas).
func Data(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// InternalError reporta 500 con mensaje genérico + texto del error subyacente.
func InternalError(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
		"errors":  errors,
	})
}

// ValidationError convierte errores de validator.v10 en un mapa campo→regla.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Datos inválidos")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Datos inválidos", errorsMap)
}

// ProcResponse mapea el resultado de un procedimiento almacenado a la
// respuesta HTTP: éxito → okCode con id generado, fallo de dominio → 400 con
// el mensaje del procedimiento.
func ProcResponse(c *fiber.Ctx, res database.ProcResult, okCode int, fallbackMsg string) error {
	msg := res.Mensaje
	if msg == "" {
		msg = fallbackMsg
	}
	if !res.Success() {
		return Error(c, fiber.StatusBadRequest, msg)
	}
	return c.Status(okCode).JSON(fiber.Map{
		"success": true,
		"message": msg,
		"id":      res.GeneratedID(),
	})
}
