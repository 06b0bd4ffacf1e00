package repository

import "github.com/eduardomuchak/mercado-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	ListActive() ([]*entity.Category, error)
	// CountAll cuenta todas las categorías, incluidas las borradas
	// lógicamente. El listado sí filtra; el conteo no (comportamiento
	// heredado del cliente, no "corregir").
	CountAll() (int64, error)
	UpdateName(id, name string) error
	SoftDelete(id string) error
}
