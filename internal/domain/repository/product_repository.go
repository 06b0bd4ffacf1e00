package repository

import (
	"time"

	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	CountActive() (int64, error)
	// ListByCategory devuelve los productos vinculados a la categoría,
	// sin filtrar IsDeleted (un producto borrado sigue apareciendo aquí).
	ListByCategory(categoryID string) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int64, error)
	UpdateName(id, name string) error
	SetChecked(id string, checked bool) error
	SoftDelete(id string, deletedAt time.Time) error
}
