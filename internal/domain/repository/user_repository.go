package repository

import "github.com/eduardomuchak/mercado-api/internal/domain/entity"

// UserRepository puerto de persistencia para User. Solo lo usa el
// seeder por ahora; no hay rutas de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
}
