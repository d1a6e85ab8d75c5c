package inventory

import (
	"context"

	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

// ListMovementsUseCase consulta el libro de movimientos (solo lectura, fuera
// de transacción).
type ListMovementsUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewListMovementsUseCase construye el caso de uso con un repositorio atado al pool.
func NewListMovementsUseCase(movRepo repository.StockMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// List devuelve movimientos del más reciente al más antiguo, opcionalmente
// filtrados por producto. Un producto sin movimientos (o inexistente) produce
// una lista vacía, no un error.
func (uc *ListMovementsUseCase) List(ctx context.Context, productID string, limit, offset int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.movRepo.List(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
