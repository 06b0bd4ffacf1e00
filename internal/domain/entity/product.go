package entity

import "time"

// Product representa un ítem de la lista de mercado.
// Checked indica si el ítem ya fue marcado como comprado.
// El borrado es lógico: IsDeleted + DeletedAt, la fila nunca se elimina.
type Product struct {
	ID        string
	Name      string
	Checked   bool
	CreatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
