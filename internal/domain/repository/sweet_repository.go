package repository

import (
	"github.com/shopspring/decimal"

	"github.com/dulceria/sweetshop-api/internal/domain/entity"
)

// SweetFilter filtros de búsqueda. Los campos ausentes no imponen restricción;
// se combinan con AND.
type SweetFilter struct {
	Name     string // substring, case-insensitive
	Category string // igualdad exacta, case-insensitive
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// SweetRepository define el puerto de persistencia para Sweet (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el registro no existe.
type SweetRepository interface {
	// Create persiste el dulce y asigna el ID generado.
	Create(sweet *entity.Sweet) error
	GetByID(id int64) (*entity.Sweet, error)
	List() ([]*entity.Sweet, error)
	Search(filter SweetFilter) ([]*entity.Sweet, error)
	// Update reemplaza name, category, price y quantity del registro.
	// Devuelve (nil, nil) si el id no existe.
	Update(sweet *entity.Sweet) (*entity.Sweet, error)
	// Delete devuelve false si ninguna fila fue eliminada.
	Delete(id int64) (bool, error)
	// DecrementQuantity resta qty solo si la cantidad almacenada alcanza,
	// en una única operación atómica contra el store. Devuelve (nil, nil)
	// si ninguna fila fue afectada (id inexistente o stock insuficiente).
	DecrementQuantity(id int64, qty int64) (*entity.Sweet, error)
	// IncrementQuantity suma qty de forma incondicional. Devuelve (nil, nil)
	// si el id no existe.
	IncrementQuantity(id int64, qty int64) (*entity.Sweet, error)
}
