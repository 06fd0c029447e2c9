package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rrhh_backend/internals/features/empleados/departamento/model"
	helper "rrhh_backend/internals/helpers"
)

type DepartamentoController struct {
	DB *gorm.DB
}

func NewDepartamentoController(db *gorm.DB) *DepartamentoController {
	return &DepartamentoController{DB: db}
}

type departamentoRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

func (ctrl *DepartamentoController) GetAll(c *fiber.Ctx) error {
	var departamentos []model.DepartamentoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("nombre").Find(&departamentos).Error; err != nil {
		return helper.InternalError(c, "Error al obtener los departamentos", err)
	}
	return helper.Data(c, departamentos)
}

func (ctrl *DepartamentoController) Create(c *fiber.Ctx) error {
	var req departamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Nombre == "" {
		return helper.Error(c, fiber.StatusBadRequest, "El nombre es obligatorio")
	}

	departamento := model.DepartamentoModel{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&departamento).Error; err != nil {
		return helper.InternalError(c, "Error al crear el departamento", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Departamento creado exitosamente", departamento)
}

func (ctrl *DepartamentoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req departamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Nombre == "" {
		return helper.Error(c, fiber.StatusBadRequest, "El nombre es obligatorio")
	}

	result := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.DepartamentoModel{}).
		Where("id_departamento = ?", id).
		Updates(map[string]interface{}{"nombre": req.Nombre, "descripcion": req.Descripcion})
	if result.Error != nil {
		return helper.InternalError(c, "Error al actualizar el departamento", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Departamento no encontrado")
	}
	return helper.Success(c, "Departamento actualizado exitosamente", nil)
}

// Delete rechaza la baja cuando existen puestos que referencian el departamento.
func (ctrl *DepartamentoController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var puestos int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("puestos").Where("id_departamento = ?", id).
		Count(&puestos).Error; err != nil {
		return helper.InternalError(c, "Error al eliminar el departamento", err)
	}
	if puestos > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No se puede eliminar: el departamento tiene puestos asociados")
	}

	result := ctrl.DB.WithContext(c.UserContext()).
		Where("id_departamento = ?", id).
		Delete(&model.DepartamentoModel{})
	if result.Error != nil {
		return helper.InternalError(c, "Error al eliminar el departamento", result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Departamento no encontrado")
	}
	return helper.Success(c, "Departamento eliminado exitosamente", nil)
}
