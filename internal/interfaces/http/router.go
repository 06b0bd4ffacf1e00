package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eduardomuchak/mercado-api/internal/application/dto"
	"github.com/eduardomuchak/mercado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
}

// Router registra las rutas de la API. Las rutas viven en la raíz
// (sin prefijo /api) para mantener compatibilidad con el cliente.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Hello World!"})
	})

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categoryHandler.List)
	app.Post("/categories", categoryHandler.Create)
	app.Put("/categories/:categoryId", categoryHandler.Update)
	app.Delete("/categories/:categoryId", categoryHandler.Delete)

	// Products. Ojo con la asimetría heredada: el listado y el listado
	// por categoría cuelgan de /products, el resto de /product.
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Get("/products/:categoryId", productHandler.ListByCategory)
	app.Post("/product", productHandler.Create)
	app.Patch("/product/:productId", productHandler.Update)
	app.Delete("/product/:productId", productHandler.Delete)
	app.Patch("/product/:productId/toggle", productHandler.Toggle)
}
