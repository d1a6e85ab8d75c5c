package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/application/inventory"
	"github.com/omarvides/tienda-stock/internal/domain"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos de stock.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	list     *inventory.ListMovementsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, list *inventory.ListMovementsUseCase) *MovementHandler {
	return &MovementHandler{register: register, list: list}
}

// Register godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto, tipo (entrada|salida), cantidad, nota opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.register.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Note:      in.Note,
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			// El mensaje completo ("Stock insuficiente. Solo tienes N...")
			// es superficie de compatibilidad con el frontend.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: stockErr.Error()})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad: debe ser un entero positivo"})
		case errors.Is(err, domain.ErrInvalidMovementType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo: debe ser entrada o salida"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto es requerido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(movement))
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movimientos
// @Produce      json
// @Param        producto  query  string  false  "Filtrar por producto (UUID)"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	productID := c.Query("producto")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	out, err := h.list.List(c.Context(), productID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
