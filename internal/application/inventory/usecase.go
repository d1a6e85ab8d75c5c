package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

// RegisterMovementUseCase es la única puerta por la que cambia el stock de un
// producto. Registra entradas y salidas de forma transaccional con bloqueo de
// fila (SELECT FOR UPDATE) y Commit/Rollback: el asiento en movimientos_stock
// y el stock actualizado en productos nunca divergen.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ProductID string
	Type      string // entrada | salida
	Quantity  int
	Note      string
}

// RegisterMovement valida el movimiento propuesto y, si es válido, confirma el
// asiento y el nuevo stock como una sola unidad atómica.
//
// La validación sin estado (tipo y cantidad) ocurre antes de abrir la
// transacción. La verificación de stock suficiente ocurre DENTRO de la
// transacción, con la fila del producto bloqueada: verificarla fuera
// reintroduce la carrera de dos salidas concurrentes leyendo el mismo stock.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidMovementType
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Note:      input.Note,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: movimientos concurrentes sobre el
		// mismo producto se serializan; productos distintos no se bloquean.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock
		switch input.Type {
		case entity.MovementTypeEntrada:
			// Sin tope: stock_maximo es solo informativo.
			newStock += input.Quantity
		case entity.MovementTypeSalida:
			if input.Quantity > product.Stock {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   input.Quantity,
				}
			}
			newStock -= input.Quantity
		}

		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return productRepo.UpdateStock(product.ID, newStock)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}
