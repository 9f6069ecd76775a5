package repository

import "github.com/dulceria/sweetshop-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create persiste el usuario y asigna el ID generado.
	// Devuelve domain.ErrEmailAlreadyExists ante violación de unicidad del email.
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
