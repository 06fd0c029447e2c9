package constants

// Roles del sistema (tabla roles). Solo existen dos.
const (
	RoleAdministrador = "Administrador"
	RoleEmpleado      = "Empleado"
)

const (
	ErrTokenRequerido  = "Se requiere un token para la autenticación"
	ErrTokenInvalido   = "Token inválido o expirado"
	ErrSoloAdmin       = "Se requiere rol de Administrador"
	ErrCredenciales    = "Credenciales inválidas"
	ErrUsuarioInactivo = "Usuario inactivo"
)

var AdminOnly = []string{RoleAdministrador}
