package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rrhh_backend/internals/configs"
	"rrhh_backend/internals/constants"
	empleadoModel "rrhh_backend/internals/features/empleados/empleado/model"
	authDTO "rrhh_backend/internals/features/users/auth/dto"
	rolModel "rrhh_backend/internals/features/users/auth/model"
)

// Errores de dominio del login; el controller los mapea a 401 sin filtrar
// cuál verificación falló (el mensaje de credenciales es genérico a propósito).
var (
	ErrCredenciales       = errors.New(constants.ErrCredenciales)
	ErrUsuarioInactivo    = errors.New(constants.ErrUsuarioInactivo)
	ErrPasswordIncorrecto = errors.New("La contraseña actual es incorrecta")
)

// Login valida credenciales y devuelve el token firmado + proyección saneada.
func Login(ctx context.Context, db *gorm.DB, email, password string) (string, *authDTO.UsuarioSesion, error) {
	var empleado empleadoModel.EmpleadoModel
	if err := db.WithContext(ctx).
		Where("email = ?", email).
		First(&empleado).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrCredenciales
		}
		return "", nil, err
	}

	if empleado.Estado != constants.EmpleadoActivo {
		return "", nil, ErrUsuarioInactivo
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empleado.Password), []byte(password)); err != nil {
		return "", nil, ErrCredenciales
	}

	var rol rolModel.RolModel
	if err := db.WithContext(ctx).
		Where("id_rol = ?", empleado.IDRol).
		First(&rol).Error; err != nil {
		return "", nil, err
	}

	token, err := SignToken(empleado.IDEmpleado, rol.Nombre)
	if err != nil {
		return "", nil, err
	}

	return token, &authDTO.UsuarioSesion{
		ID:       empleado.IDEmpleado,
		Codigo:   empleado.CodigoEmpleado,
		Nombre:   empleado.Nombre,
		Apellido: empleado.Apellido,
		Email:    empleado.Email,
		Rol:      rol.Nombre,
	}, nil
}

// SignToken firma un HS256 con payload {id, rol} y la expiración configurada.
func SignToken(id int64, rol string) (string, error) {
	claims := jwt.MapClaims{
		"id":  id,
		"rol": rol,
		"exp": time.Now().Add(configs.JWTExpiresIn).Unix(),
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

func ChangePassword(ctx context.Context, db *gorm.DB, userID int64, oldPassword, newPassword string) error {
	var empleado empleadoModel.EmpleadoModel
	if err := db.WithContext(ctx).
		Select("id_empleado", "password").
		Where("id_empleado = ?", userID).
		First(&empleado).Error; err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empleado.Password), []byte(oldPassword)); err != nil {
		return ErrPasswordIncorrecto
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 10)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).
		Model(&empleadoModel.EmpleadoModel{}).
		Where("id_empleado = ?", userID).
		Update("password", string(hashed)).Error
}
