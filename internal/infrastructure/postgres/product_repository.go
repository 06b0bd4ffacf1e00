package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, checked, created_at, deleted_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Checked, product.CreatedAt, product.DeletedAt, product.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (borrado o no). Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, checked, created_at, deleted_at, is_deleted
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Checked, &p.CreatedAt, &p.DeletedAt, &p.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListActive lista los productos no borrados.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `
		SELECT id, name, checked, created_at, deleted_at, is_deleted
		FROM products WHERE is_deleted = false ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// CountActive cuenta los productos no borrados.
func (r *ProductRepo) CountActive() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE is_deleted = false`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// ListByCategory lista los productos vinculados a la categoría. Sin filtro
// de is_deleted: un producto borrado que sigue vinculado también sale.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT DISTINCT p.id, p.name, p.checked, p.created_at, p.deleted_at, p.is_deleted
		FROM products p
		JOIN category_products cp ON cp.product_id = p.id
		WHERE cp.category_id = $1
		ORDER BY p.created_at, p.id`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// CountByCategory cuenta los productos vinculados a la categoría (mismo
// conjunto que ListByCategory).
func (r *ProductRepo) CountByCategory(categoryID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(DISTINCT p.id)
		FROM products p
		JOIN category_products cp ON cp.product_id = p.id
		WHERE cp.category_id = $1`, categoryID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return total, nil
}

// UpdateName cambia el nombre del producto.
func (r *ProductRepo) UpdateName(id, name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("update product name: %w", err)
	}
	return nil
}

// SetChecked persiste el nuevo valor del campo checked.
func (r *ProductRepo) SetChecked(id string, checked bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET checked = $2 WHERE id = $1`, id, checked)
	if err != nil {
		return fmt.Errorf("set product checked: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como borrado y registra deleted_at.
// Cero filas afectadas no es error (borrado idempotente).
func (r *ProductRepo) SoftDelete(id string, deletedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_deleted = true, deleted_at = $2 WHERE id = $1`, id, deletedAt)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Checked, &p.CreatedAt, &p.DeletedAt, &p.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
