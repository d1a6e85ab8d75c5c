package dto

import (
	"time"

	"github.com/omarvides/tienda-stock/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/movimientos.
// Las claves JSON son las del API original; el frontend las envía tal cual.
type RegisterMovementRequest struct {
	ProductID string `json:"producto"`
	Type      string `json:"tipo"`     // entrada | salida
	Quantity  int    `json:"cantidad"` // entero positivo
	Note      string `json:"nota"`
}

// MovementResponse salida de un movimiento confirmado.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"producto"`
	Type      string    `json:"tipo"`
	Quantity  int       `json:"cantidad"`
	Note      string    `json:"nota,omitempty"`
	Date      time.Time `json:"fecha"`
}

// MovementListResponse lista paginada de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Note:      m.Note,
		Date:      m.CreatedAt,
	}
}
