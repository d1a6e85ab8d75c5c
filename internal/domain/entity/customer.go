package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la tienda (fiado / saldos).
type Customer struct {
	ID          string
	Name        string
	Address     string
	Balance     decimal.Decimal // saldo_actual
	LastPayment *time.Time      // ultimo_pago, puede no existir
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
