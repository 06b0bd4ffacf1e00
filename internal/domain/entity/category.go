package entity

import "time"

// Category representa una categoría de la lista de mercado.
// Icon es el nombre del ícono que muestra el cliente.
type Category struct {
	ID        string
	Name      string
	Icon      string
	CreatedAt time.Time
	IsDeleted bool
}
