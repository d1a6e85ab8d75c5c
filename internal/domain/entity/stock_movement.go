package entity

import "time"

// Tipos de movimiento de stock. Los valores son los del API original
// (el frontend envía "entrada"/"salida" tal cual).
const (
	MovementTypeEntrada = "entrada" // aumenta stock (reposición, devolución)
	MovementTypeSalida  = "salida"  // disminuye stock (venta, baja)
)

// IsValidMovementType valida que el tipo sea entrada o salida.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida
}

// StockMovement es un asiento inmutable del libro de movimientos: un cambio
// direccional de cantidad contra un producto. Una vez confirmado nunca se
// actualiza; el stock actual de un producto siempre es reconstruible como
// stock inicial + Σ entradas − Σ salidas.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // entrada | salida
	Quantity  int    // estrictamente positivo
	Note      string
	CreatedAt time.Time // fecha, asignada al confirmar
}
