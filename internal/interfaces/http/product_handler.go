package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/eduardomuchak/mercado-api/internal/application/dto"
	"github.com/eduardomuchak/mercado-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product y sus vínculos
// con categorías.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar productos de una categoría
// @Tags         products
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría (UUID)"
// @Success      200  {object}  dto.ProductsByCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	if _, err := uuid.Parse(categoryID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "categoryId debe ser un UUID válido"})
	}
	out, err := h.uc.ListByCategory(categoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto con sus categorías
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreatedProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name es requerido"})
	}
	if in.CategoriesIDs == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "categoriesIds es requerido (puede ser un arreglo vacío)"})
	}
	for _, categoryID := range in.CategoriesIDs {
		if _, err := uuid.Parse(categoryID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "categoriesIds debe contener solo UUIDs válidos"})
		}
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedProductResponse{ProductCreated: *out})
}

// Update godoc
// @Summary      Actualizar nombre y/o categorías de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto (UUID)"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UpdatedProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /product/{productId} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if _, err := uuid.Parse(productID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "productId debe ser un UUID válido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.CategoriesIDs != nil {
		for _, categoryID := range *in.CategoriesIDs {
			if _, err := uuid.Parse(categoryID); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "categoriesIds debe contener solo UUIDs válidos"})
			}
		}
	}
	out, err := h.uc.Update(c.Context(), productID, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: fmt.Sprintf("Product with ID %s not found", productID),
		})
	}
	return c.JSON(dto.UpdatedProductResponse{UpdatedProduct: *out})
}

// Delete godoc
// @Summary      Borrar producto (lógico)
// @Tags         products
// @Produce      json
// @Param        productId  path  string  true  "ID del producto (UUID)"
// @Success      204   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /product/{productId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if _, err := uuid.Parse(productID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "productId debe ser un UUID válido"})
	}
	// Borrado idempotente: repetirlo sobre un producto ya borrado también
	// responde éxito, sin 404.
	if err := h.uc.Delete(productID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusNoContent).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Product with ID %s deleted", productID),
	})
}

// Toggle godoc
// @Summary      Alternar el campo checked de un producto
// @Tags         products
// @Produce      json
// @Param        productId  path  string  true  "ID del producto (UUID)"
// @Success      200   {object}  dto.ToggledProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /product/{productId}/toggle [patch]
func (h *ProductHandler) Toggle(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if _, err := uuid.Parse(productID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "productId debe ser un UUID válido"})
	}
	out, err := h.uc.Toggle(productID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: fmt.Sprintf("Product with ID %s not found", productID),
		})
	}
	return c.JSON(dto.ToggledProductResponse{Product: *out})
}
