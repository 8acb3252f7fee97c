package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seanosorio/weapons-api/internal/application/dto"
	"github.com/seanosorio/weapons-api/internal/application/usecase"
	"github.com/seanosorio/weapons-api/internal/domain"
)

// WeaponHandler maneja las peticiones HTTP para armas.
type WeaponHandler struct {
	uc *usecase.WeaponUseCase
}

// NewWeaponHandler construye el handler.
func NewWeaponHandler(uc *usecase.WeaponUseCase) *WeaponHandler {
	return &WeaponHandler{uc: uc}
}

// List godoc
// @Summary      Listar armas
// @Tags         weapons
// @Produce      json
// @Success      200  {array}  dto.WeaponResponse
// @Router       /weapons [get]
func (h *WeaponHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener arma por ID
// @Tags         weapons
// @Produce      json
// @Param        id   path  int  true  "ID del arma"
// @Success      200  {object}  dto.WeaponResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /weapons/{id} [get]
func (h *WeaponHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "arma no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear arma
// @Description  name y category_id son obligatorios; la categoría debe existir.
// @Tags         weapons
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWeaponRequest  true  "Datos del arma"
// @Success      201   {object}  dto.WeaponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /weapons [post]
func (h *WeaponHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWeaponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los campos name y category_id son obligatorios"})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CATEGORY_NOT_FOUND", Message: "la categoría especificada no existe"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar arma
// @Description  Si cambia category_id se re-valida que la categoría exista.
// @Tags         weapons
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del arma"
// @Param        body  body  dto.UpdateWeaponRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WeaponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /weapons/{id} [put]
func (h *WeaponHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.UpdateWeaponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el campo name no puede ser vacío"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "arma no encontrada"})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CATEGORY_NOT_FOUND", Message: "la categoría especificada no existe"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar arma
// @Tags         weapons
// @Produce      json
// @Param        id   path  int  true  "ID del arma"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /weapons/{id} [delete]
func (h *WeaponHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "arma no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "arma eliminada"})
}
