package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name        string           `json:"nombre"`
	Address     string           `json:"direccion"`
	Balance     *decimal.Decimal `json:"saldo_actual"`
	LastPayment *time.Time       `json:"ultimo_pago"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name        *string          `json:"nombre"`
	Address     *string          `json:"direccion"`
	Balance     *decimal.Decimal `json:"saldo_actual"`
	LastPayment *time.Time       `json:"ultimo_pago"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Address     string          `json:"direccion,omitempty"`
	Balance     decimal.Decimal `json:"saldo_actual"`
	LastPayment *time.Time      `json:"ultimo_pago,omitempty"`
	CreatedAt   time.Time       `json:"fecha_creacion"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
