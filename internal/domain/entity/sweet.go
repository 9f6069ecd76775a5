package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sweet representa un dulce del inventario. Quantity nunca es negativa:
// la compra decrementa de forma condicional en el store.
type Sweet struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal // precio de venta, no negativo
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
