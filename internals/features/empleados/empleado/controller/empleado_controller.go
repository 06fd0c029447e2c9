package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	database "rrhh_backend/internals/databases"
	"rrhh_backend/internals/features/empleados/empleado/dto"
	helper "rrhh_backend/internals/helpers"
	"rrhh_backend/internals/middlewares"
)

var validate = validator.New()

type EmpleadoController struct {
	DB *gorm.DB
	SP database.ProcedureInvoker
}

func NewEmpleadoController(db *gorm.DB, sp database.ProcedureInvoker) *EmpleadoController {
	return &EmpleadoController{DB: db, SP: sp}
}

const detalleSelect = `
SELECT e.id_empleado, e.codigo_empleado, e.nombre, e.apellido,
       e.dpi, e.fecha_nacimiento, e.direccion, e.telefono,
       e.email, e.id_puesto, e.id_rol, e.fecha_contratacion,
       e.fecha_fin_contrato, e.estado, e.salario_actual,
       p.nombre AS puesto, d.id_departamento AS id_departamento, d.nombre AS departamento,
       r.nombre AS rol
FROM empleados e
JOIN puestos p ON e.id_puesto = p.id_puesto
JOIN departamentos d ON p.id_departamento = d.id_departamento
JOIN roles r ON e.id_rol = r.id_rol`

func (ctrl *EmpleadoController) GetAll(c *fiber.Ctx) error {
	var empleados []dto.EmpleadoDetalle
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(detalleSelect + " ORDER BY e.id_empleado").
		Scan(&empleados).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los empleados", err)
	}
	return helper.Data(c, empleados)
}

func (ctrl *EmpleadoController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var empleados []dto.EmpleadoDetalle
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(detalleSelect+" WHERE e.id_empleado = ?", id).
		Scan(&empleados).Error; err != nil {
		return helper.InternalError(c, "Error al obtener el empleado", err)
	}
	if len(empleados) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Empleado no encontrado")
	}
	return helper.Data(c, empleados[0])
}

func (ctrl *EmpleadoController) Create(c *fiber.Ctx) error {
	var req dto.CrearEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return helper.InternalError(c, "Error al crear el empleado", err)
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPCrearEmpleado,
		req.CodigoEmpleado, req.Nombre, req.Apellido, req.DPI,
		req.FechaNacimiento, req.Direccion, req.Telefono, req.Email,
		req.IDPuesto, req.IDRol, req.FechaContratacion, req.SalarioActual,
		string(hashed),
	)
	if err != nil {
		return helper.InternalError(c, "Error al crear el empleado", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusCreated, "Empleado creado exitosamente")
}

func (ctrl *EmpleadoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ActualizarEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPActualizarEmpleado,
		id, req.Nombre, req.Apellido, req.Direccion, req.Telefono,
		req.Email, req.IDPuesto, req.IDRol,
	)
	if err != nil {
		return helper.InternalError(c, "Error al actualizar el empleado", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Empleado actualizado exitosamente")
}

// UpdateSalario delega al procedimiento, que además inserta la fila
// append-only en historico_salarios con el admin que ejecuta el cambio.
func (ctrl *EmpleadoController) UpdateSalario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ActualizarSalarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPActualizarSalario,
		id, req.SalarioNuevo, req.Motivo, middlewares.UserID(c),
	)
	if err != nil {
		return helper.InternalError(c, "Error al actualizar el salario", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Salario actualizado exitosamente")
}

// DarDeBaja es terminal: el procedimiento fija fecha_fin_contrato una sola vez
// y deja el estado fuera de ACTIVO.
func (ctrl *EmpleadoController) DarDeBaja(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.DarDeBajaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.SP.Invoke(c.UserContext(), database.SPBajaEmpleado,
		id, req.FechaFin, req.Motivo,
	)
	if err != nil {
		return helper.InternalError(c, "Error al dar de baja al empleado", err)
	}
	return helper.ProcResponse(c, res, fiber.StatusOK, "Empleado dado de baja exitosamente")
}

func (ctrl *EmpleadoController) GetHistorialSalarios(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var historial []dto.HistorialSalarioRow
	if err := ctrl.DB.WithContext(c.UserContext()).Raw(`
		SELECT hs.id_historico_salario, hs.salario_anterior, hs.salario_nuevo,
		       hs.fecha_cambio, hs.motivo,
		       (e.nombre || ' ' || e.apellido) AS usuario_modificacion
		FROM historico_salarios hs
		LEFT JOIN empleados e ON hs.id_usuario_modificacion = e.id_empleado
		WHERE hs.id_empleado = ?
		ORDER BY hs.fecha_cambio DESC`, id).
		Scan(&historial).Error; err != nil {
		return helper.InternalError(c, "Error al obtener el historial de salarios", err)
	}
	return helper.Data(c, historial)
}
