package dto

import "time"

// CreateProductRequest entrada para crear un producto con sus vínculos.
// categoriesIds es el único nombre aceptado para el arreglo de categorías.
type CreateProductRequest struct {
	Name          string   `json:"name"`
	CategoriesIDs []string `json:"categoriesIds"`
}

// UpdateProductRequest entrada de PATCH /product/:productId. Ambos campos
// son opcionales; CategoriesIDs nil significa "no tocar los vínculos" y un
// arreglo vacío los elimina todos.
type UpdateProductRequest struct {
	Name          *string   `json:"name"`
	CategoriesIDs *[]string `json:"categoriesIds"`
}

// ProductListItem proyección de un producto en GET /products.
type ProductListItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Checked       bool     `json:"checked"`
	CategoriesIDs []string `json:"categoriesIds"`
}

// ProductListResponse respuesta de GET /products.
type ProductListResponse struct {
	Total    int64             `json:"total"`
	Products []ProductListItem `json:"products"`
}

// ProductSummary proyección {id, name}.
type ProductSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductsByCategoryResponse respuesta de GET /products/:categoryId.
type ProductsByCategoryResponse struct {
	Total    int64            `json:"total"`
	Products []ProductSummary `json:"products"`
}

// ProductDetail fila completa de un producto.
type ProductDetail struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Checked   bool       `json:"checked"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt"`
	IsDeleted bool       `json:"isDeleted"`
}

// CreatedProductResponse respuesta de POST /product.
type CreatedProductResponse struct {
	ProductCreated ProductDetail `json:"productCreated"`
}

// UpdatedProductResponse respuesta de PATCH /product/:productId.
// Solo id y name; checked y los vínculos no se devuelven aquí.
type UpdatedProductResponse struct {
	UpdatedProduct ProductSummary `json:"updatedProduct"`
}

// ToggledProduct proyección {id, name, checked} tras el toggle.
type ToggledProduct struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// ToggledProductResponse respuesta de PATCH /product/:productId/toggle.
type ToggledProductResponse struct {
	Product ToggledProduct `json:"product"`
}
