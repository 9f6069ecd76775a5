package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulceria/sweetshop-api/internal/application/dto"
	"github.com/dulceria/sweetshop-api/internal/application/usecase"
	"github.com/dulceria/sweetshop-api/internal/domain"
	"github.com/dulceria/sweetshop-api/pkg/logger"
)

// SweetHandler maneja las peticiones HTTP del inventario de dulces (protegido).
type SweetHandler struct {
	uc  *usecase.SweetUseCase
	log *logger.Logger
}

// NewSweetHandler construye el handler.
func NewSweetHandler(uc *usecase.SweetUseCase, log *logger.Logger) *SweetHandler {
	return &SweetHandler{uc: uc, log: log}
}

// sweetID extrae el :id de la ruta. Un id no numérico no referencia nada,
// se trata igual que un registro inexistente.
func sweetID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return int64(id), nil
}

// Create godoc
// @Summary      Crear dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSweetRequest  true  "name, category, price, quantity"
// @Success      201   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.Validation("cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar dulces
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SweetResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar dulces por nombre, categoría y rango de precio
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "substring, case-insensitive"
// @Param        category  query  string  false  "igualdad exacta, case-insensitive"
// @Param        minPrice  query  number  false  "precio mínimo"
// @Param        maxPrice  query  number  false  "precio máximo"
// @Success      200  {array}   dto.SweetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c *fiber.Ctx) error {
	in := dto.SearchSweetsRequest{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener dulce por ID
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del dulce"
// @Success      200  {object}  dto.SweetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [get]
func (h *SweetHandler) GetByID(c *fiber.Ctx) error {
	id, err := sweetID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar dulce (parcial)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del dulce"
// @Param        body  body  dto.UpdateSweetRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.SweetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	id, err := sweetID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.Validation("cuerpo inválido"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dulce
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del dulce"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	id, err := sweetID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{})
}

// Purchase godoc
// @Summary      Comprar unidades de un dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del dulce"
// @Param        body  body  dto.StockRequest  true  "quantity"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	id, err := sweetID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.Validation("cuerpo inválido"))
	}
	out, err := h.uc.Purchase(id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Reabastecer un dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del dulce"
// @Param        body  body  dto.StockRequest  true  "quantity"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	id, err := sweetID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.Validation("cuerpo inválido"))
	}
	out, err := h.uc.Restock(id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
