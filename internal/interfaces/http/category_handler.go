package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/eduardomuchak/mercado-api/internal/application/dto"
	"github.com/eduardomuchak/mercado-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CreatedCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Name == "" || in.Icon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name e icon son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedCategoryResponse{
		CreatedCategory: dto.CategoryEnvelope{Category: *out},
	})
}

// Update godoc
// @Summary      Renombrar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría (UUID)"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.UpdatedCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{categoryId} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	if _, err := uuid.Parse(categoryID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "categoryId debe ser un UUID válido"})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name es requerido"})
	}
	out, err := h.uc.Rename(categoryID, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: fmt.Sprintf("Category with ID %s not found", categoryID),
		})
	}
	return c.JSON(dto.UpdatedCategoryResponse{
		UpdatedCategory: dto.CategoryEnvelope{Category: *out},
	})
}

// Delete godoc
// @Summary      Borrar categoría (lógico)
// @Tags         categories
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría (UUID)"
// @Success      204   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	if _, err := uuid.Parse(categoryID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "categoryId debe ser un UUID válido"})
	}
	if err := h.uc.Delete(categoryID); err != nil {
		return respondError(c, err)
	}
	// El cliente original responde 204 con cuerpo; se mantiene tal cual.
	return c.Status(fiber.StatusNoContent).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Category with ID %s deleted", categoryID),
	})
}
