package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidMovementType = errors.New("tipo de movimiento inválido")
	ErrDuplicate           = errors.New("recurso duplicado")
)

// InsufficientStockError se retorna cuando una salida pide más unidades de las
// que hay en stock. El mensaje es superficie de compatibilidad: el frontend
// hace match sobre "Stock insuficiente...".
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Solo tienes %d unidades de %s.", e.Available, e.ProductName)
}
