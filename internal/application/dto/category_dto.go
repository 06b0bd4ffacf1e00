package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// UpdateCategoryRequest entrada para renombrar una categoría.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryItem proyección {id, name, icon} usada en el listado.
type CategoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryListResponse respuesta de GET /categories.
// Total cuenta todas las filas (incluye borradas); Categories no.
type CategoryListResponse struct {
	Total      int64          `json:"total"`
	Categories []CategoryItem `json:"categories"`
}

// CategoryDetail fila completa de una categoría.
type CategoryDetail struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// CategoryEnvelope envuelve la categoría como { "category": {...} }.
type CategoryEnvelope struct {
	Category CategoryDetail `json:"category"`
}

// CreatedCategoryResponse respuesta de POST /categories.
type CreatedCategoryResponse struct {
	CreatedCategory CategoryEnvelope `json:"createdCategory"`
}

// UpdatedCategoryResponse respuesta de PUT /categories/:categoryId.
type UpdatedCategoryResponse struct {
	UpdatedCategory CategoryEnvelope `json:"updatedCategory"`
}
