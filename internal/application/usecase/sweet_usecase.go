package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulceria/sweetshop-api/internal/application/dto"
	"github.com/dulceria/sweetshop-api/internal/domain"
	"github.com/dulceria/sweetshop-api/internal/domain/entity"
	"github.com/dulceria/sweetshop-api/internal/domain/repository"
)

// SweetUseCase casos de uso del inventario de dulces: CRUD, búsqueda y las dos
// mutaciones de stock (purchase, restock).
type SweetUseCase struct {
	repo repository.SweetRepository
}

// NewSweetUseCase construye el caso de uso.
func NewSweetUseCase(repo repository.SweetRepository) *SweetUseCase {
	return &SweetUseCase{repo: repo}
}

// Create crea un dulce. name, category, price y quantity son obligatorios;
// price y quantity no pueden ser negativos.
func (uc *SweetUseCase) Create(in dto.CreateSweetRequest) (*dto.SweetResponse, error) {
	if in.Name == "" || in.Category == "" || in.Price == nil || in.Quantity == nil {
		return nil, domain.ErrMissingFields
	}
	if in.Price.IsNegative() {
		return nil, domain.Validation("price no puede ser negativo")
	}
	if *in.Quantity < 0 {
		return nil, domain.Validation("quantity no puede ser negativa")
	}
	now := time.Now()
	sweet := &entity.Sweet{
		Name:      in.Name,
		Category:  in.Category,
		Price:     *in.Price,
		Quantity:  *in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sweet); err != nil {
		return nil, err
	}
	return toSweetResponse(sweet), nil
}

// GetByID obtiene un dulce por ID.
func (uc *SweetUseCase) GetByID(id int64) (*dto.SweetResponse, error) {
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	return toSweetResponse(sweet), nil
}

// List devuelve todos los dulces sin filtrar, en el orden nativo del store.
func (uc *SweetUseCase) List() ([]*dto.SweetResponse, error) {
	sweets, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSweetResponses(sweets), nil
}

// Search valida los filtros, los traduce al puerto de persistencia y devuelve
// las coincidencias. Un resultado vacío es una respuesta válida, no un error.
func (uc *SweetUseCase) Search(in dto.SearchSweetsRequest) ([]*dto.SweetResponse, error) {
	filter := repository.SweetFilter{
		Name:     in.Name,
		Category: in.Category,
	}
	if in.MinPrice != "" {
		min, err := parsePrice(in.MinPrice)
		if err != nil {
			return nil, domain.Validation("minPrice debe ser un número no negativo")
		}
		filter.MinPrice = min
	}
	if in.MaxPrice != "" {
		max, err := parsePrice(in.MaxPrice)
		if err != nil {
			return nil, domain.Validation("maxPrice debe ser un número no negativo")
		}
		filter.MaxPrice = max
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domain.Validation("minPrice no puede ser mayor que maxPrice")
	}
	sweets, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}
	return toSweetResponses(sweets), nil
}

// Update actualiza parcialmente un dulce: solo los campos presentes reemplazan
// el valor actual, el resto se conserva.
func (uc *SweetUseCase) Update(id int64, in dto.UpdateSweetRequest) (*dto.SweetResponse, error) {
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		sweet.Name = *in.Name
	}
	if in.Category != nil {
		sweet.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.Validation("price no puede ser negativo")
		}
		sweet.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.Validation("quantity no puede ser negativa")
		}
		sweet.Quantity = *in.Quantity
	}
	sweet.UpdatedAt = time.Now()
	updated, err := uc.repo.Update(sweet)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toSweetResponse(updated), nil
}

// Delete elimina un dulce por ID.
func (uc *SweetUseCase) Delete(id int64) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Purchase descuenta stock con un decremento condicional atómico en el store:
// dos compras concurrentes no pueden sobregirar la última unidad. Si ninguna
// fila fue afectada se relee el registro para distinguir 404 de stock insuficiente.
func (uc *SweetUseCase) Purchase(id int64, in dto.StockRequest) (*dto.SweetResponse, error) {
	if in.Quantity == nil || *in.Quantity <= 0 {
		return nil, domain.Validation("quantity debe ser un entero positivo")
	}
	updated, err := uc.repo.DecrementQuantity(id, *in.Quantity)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		existing, err := uc.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	return toSweetResponse(updated), nil
}

// Restock incrementa stock de forma incondicional.
func (uc *SweetUseCase) Restock(id int64, in dto.StockRequest) (*dto.SweetResponse, error) {
	if in.Quantity == nil || *in.Quantity <= 0 {
		return nil, domain.Validation("quantity debe ser un entero positivo")
	}
	updated, err := uc.repo.IncrementQuantity(id, *in.Quantity)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toSweetResponse(updated), nil
}

func parsePrice(s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}

func toSweetResponse(s *entity.Sweet) *dto.SweetResponse {
	if s == nil {
		return nil
	}
	return &dto.SweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSweetResponses(sweets []*entity.Sweet) []*dto.SweetResponse {
	out := make([]*dto.SweetResponse, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, toSweetResponse(s))
	}
	return out
}
