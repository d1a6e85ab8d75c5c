package entity

import "time"

// Cashier representa un cajero. EmployeeCode es el identificador único del
// empleado; Active se desmarca cuando ya no labora (no se borra el registro).
type Cashier struct {
	ID           string
	FirstName    string // nombre
	LastName     string // apellidos
	EmployeeCode string // codigo_empleado, único
	Phone        string
	Email        string
	Active       bool
	CreatedAt    time.Time // fecha_registro
}
