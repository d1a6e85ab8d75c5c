package dto

import "time"

// CreateCashierRequest entrada para crear un cajero.
type CreateCashierRequest struct {
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellidos"`
	EmployeeCode string `json:"codigo_empleado"`
	Phone        string `json:"telefono"`
	Email        string `json:"email"`
}

// UpdateCashierRequest entrada para actualizar un cajero.
// Active permite desmarcar cajeros que ya no laboran sin borrarlos.
type UpdateCashierRequest struct {
	FirstName    *string `json:"nombre"`
	LastName     *string `json:"apellidos"`
	EmployeeCode *string `json:"codigo_empleado"`
	Phone        *string `json:"telefono"`
	Email        *string `json:"email"`
	Active       *bool   `json:"activo"`
}

// CashierResponse salida de un cajero.
type CashierResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellidos"`
	EmployeeCode string    `json:"codigo_empleado"`
	Phone        string    `json:"telefono,omitempty"`
	Email        string    `json:"email,omitempty"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"fecha_registro"`
}

// CashierListResponse lista paginada de cajeros (ordenados por nombre).
type CashierListResponse struct {
	Items []CashierResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
