package usecase

import (
	"context"

	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que crear un producto con sus
// vínculos, o reemplazar el conjunto de vínculos, sea atómico: ningún
// lector ve el estado intermedio entre el delete y el insert.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		linkRepo repository.CategoryProductRepository,
	) error) error
}
