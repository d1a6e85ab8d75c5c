package entity

import "time"

// Worker representa un trabajador del negocio (personal).
type Worker struct {
	ID        string
	Name      string
	Email     string // correo, único
	Phone     string // numero
	CreatedAt time.Time
	UpdatedAt time.Time
}
