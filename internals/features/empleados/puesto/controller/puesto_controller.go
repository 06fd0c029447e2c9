package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/empleados/puesto/model"
	helper "rrhh_backend/internals/helpers"
)

var validate = validator.New()

type PuestoController struct {
	DB *gorm.DB
}

func NewPuestoController(db *gorm.DB) *PuestoController {
	return &PuestoController{DB: db}
}

type puestoRequest struct {
	Nombre         string  `json:"nombre" validate:"required,max=100"`
	Descripcion    *string `json:"descripcion,omitempty" validate:"omitempty,max=255"`
	IDDepartamento int64   `json:"id_departamento" validate:"required,gt=0"`
	SalarioBase    float64 `json:"salario_base" validate:"gte=0"`
}

func (ctrl *PuestoController) GetAll(c *fiber.Ctx) error {
	var puestos []model.PuestoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("nombre").Find(&puestos).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los puestos", err)
	}
	return helper.Data(c, puestos)
}

func (ctrl *PuestoController) GetByDepartamento(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var puestos []model.PuestoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("id_departamento = ?", id).
		Order("nombre").Find(&puestos).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los puestos", err)
	}
	return helper.Data(c, puestos)
}

func (ctrl *PuestoController) Create(c *fiber.Ctx) error {
	var req puestoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	puesto := model.PuestoModel{
		IDDepartamento: req.IDDepartamento,
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		SalarioBase:    req.SalarioBase,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&puesto).Error; err != nil {
		return helper.InternalError(c, "Error al crear el puesto", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Puesto creado exitosamente", puesto)
}

func (ctrl *PuestoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req puestoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.PuestoModel{}).
		Where("id_puesto = ?", id).
		Updates(map[string]interface{}{
			"id_departamento": req.IDDepartamento,
			"nombre":          req.Nombre,
			"descripcion":     req.Descripcion,
			"salario_base":    req.SalarioBase,
		})
	if result.Error != nil {
		return helper.InternalError(c, "Error al actualizar el puesto", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Puesto no encontrado")
	}
	return helper.Success(c, "Puesto actualizado exitosamente", nil)
}

// Delete rechaza la baja cuando existen empleados asignados al puesto.
func (ctrl *PuestoController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var empleados int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("empleados").Where("id_puesto = ?", id).
		Count(&empleados).Error; err != nil {
		return helper.InternalError(c, "Error al eliminar el puesto", err)
	}
	if empleados > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No se puede eliminar: el puesto tiene empleados asignados")
	}

	result := ctrl.DB.WithContext(c.UserContext()).
		Where("id_puesto = ?", id).
		Delete(&model.PuestoModel{})
	if result.Error != nil {
		return helper.InternalError(c, "Error al eliminar el puesto", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Puesto no encontrado")
	}
	return helper.Success(c, "Puesto eliminado exitosamente", nil)
}
