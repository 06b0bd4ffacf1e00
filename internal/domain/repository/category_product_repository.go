package repository

import "github.com/eduardomuchak/mercado-api/internal/domain/entity"

// CategoryProductRepository puerto para la tabla de asociación
// producto-categoría. A diferencia de las entidades, los vínculos se
// borran físicamente.
type CategoryProductRepository interface {
	Create(link *entity.CategoryProduct) error
	ListByProductIDs(productIDs []string) ([]*entity.CategoryProduct, error)
	DeleteByProduct(productID string) error
}
