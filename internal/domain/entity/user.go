package entity

import "time"

// User usuario de la aplicación. La tabla existe en el esquema y la
// puebla el seeder, pero ninguna ruta la expone todavía.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	CreatedAt    time.Time
}
