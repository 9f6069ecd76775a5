package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSweetRequest entrada para crear un dulce. Price y Quantity son punteros
// para distinguir "campo ausente" de cero.
type CreateSweetRequest struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int64           `json:"quantity"`
}

// UpdateSweetRequest entrada para actualización parcial: solo los campos
// presentes reemplazan el valor actual.
type UpdateSweetRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int64           `json:"quantity"`
}

// StockRequest entrada para purchase y restock.
type StockRequest struct {
	Quantity *int64 `json:"quantity"`
}

// SearchSweetsRequest filtros de búsqueda tal como llegan por query string;
// los precios se validan y parsean en el use case.
type SearchSweetsRequest struct {
	Name     string `query:"name"`
	Category string `query:"category"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
}

// SweetResponse salida de un dulce.
type SweetResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
