package postgres

import (
	"context"
	"fmt"

	"github.com/eduardomuchak/mercado-api/internal/domain"
	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
)

var _ repository.CategoryProductRepository = (*CategoryProductRepo)(nil)

// CategoryProductRepo adaptador PostgreSQL para la tabla de asociación
// producto-categoría (usable con pool o tx).
type CategoryProductRepo struct {
	q Querier
}

// NewCategoryProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryProductRepository(q Querier) *CategoryProductRepo {
	return &CategoryProductRepo{q: q}
}

// Create inserta un vínculo producto-categoría. Una FK inválida (categoría
// o producto inexistente) se traduce a domain.ErrConflict.
func (r *CategoryProductRepo) Create(link *entity.CategoryProduct) error {
	query := `
		INSERT INTO category_products (product_id, category_id)
		VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, link.ProductID, link.CategoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert category_product: %w", err)
	}
	return nil
}

// ListByProductIDs devuelve los vínculos de los productos indicados.
func (r *CategoryProductRepo) ListByProductIDs(productIDs []string) ([]*entity.CategoryProduct, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT product_id, category_id
		FROM category_products WHERE product_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list category_products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryProduct
	for rows.Next() {
		var l entity.CategoryProduct
		if err := rows.Scan(&l.ProductID, &l.CategoryID); err != nil {
			return nil, fmt.Errorf("scan category_product: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteByProduct borra físicamente todos los vínculos de un producto.
func (r *CategoryProductRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM category_products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete category_products: %w", err)
	}
	return nil
}
