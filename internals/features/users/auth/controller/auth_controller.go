package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	empleadoDTO "rrhh_backend/internals/features/empleados/empleado/dto"
	"rrhh_backend/internals/features/users/auth/dto"
	rolModel "rrhh_backend/internals/features/users/auth/model"
	"rrhh_backend/internals/features/users/auth/service"
	helper "rrhh_backend/internals/helpers"
	"rrhh_backend/internals/middlewares"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Se requiere email y contraseña")
	}

	token, user, err := service.Login(c.UserContext(), ac.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredenciales) || errors.Is(err, service.ErrUsuarioInactivo) {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.InternalError(c, "Error al iniciar sesión", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// GetProfile devuelve la proyección completa del empleado autenticado
// (empleado + puesto + departamento + rol), sin el hash.
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	userID := middlewares.UserID(c)

	var usuarios []empleadoDTO.EmpleadoDetalle
	if err := ac.DB.WithContext(c.UserContext()).Raw(`
		SELECT e.id_empleado, e.codigo_empleado, e.nombre, e.apellido,
		       e.dpi, e.fecha_nacimiento, e.direccion, e.telefono,
		       e.email, e.id_puesto, e.id_rol, e.fecha_contratacion,
		       e.fecha_fin_contrato, e.estado, e.salario_actual,
		       p.nombre AS puesto, d.id_departamento AS id_departamento, d.nombre AS departamento,
		       r.nombre AS rol
		FROM empleados e
		JOIN puestos p ON e.id_puesto = p.id_puesto
		JOIN departamentos d ON p.id_departamento = d.id_departamento
		JOIN roles r ON e.id_rol = r.id_rol
		WHERE e.id_empleado = ?`, userID).
		Scan(&usuarios).Error; err != nil {
		return helper.InternalError(c, "Error al obtener información del perfil", err)
	}
	if len(usuarios) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    usuarios[0],
	})
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Se requiere la contraseña actual y la nueva contraseña")
	}
	if len(req.NewPassword) < 6 {
		return helper.Error(c, fiber.StatusBadRequest, "La nueva contraseña debe tener al menos 6 caracteres")
	}

	if err := service.ChangePassword(c.UserContext(), ac.DB, middlewares.UserID(c), req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrPasswordIncorrecto) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Usuario no encontrado")
		}
		return helper.InternalError(c, "Error al cambiar la contraseña", err)
	}

	return helper.Success(c, "Contraseña actualizada correctamente", nil)
}

func (ac *AuthController) GetRoles(c *fiber.Ctx) error {
	var roles []rolModel.RolModel
	if err := ac.DB.WithContext(c.UserContext()).
		Order("id_rol ASC").Find(&roles).Error; err != nil {
		return helper.InternalError(c, "Error al obtener la lista de roles", err)
	}
	return helper.Data(c, roles)
}
