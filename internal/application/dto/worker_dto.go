package dto

import "time"

// CreateWorkerRequest entrada para crear un trabajador.
type CreateWorkerRequest struct {
	Name  string `json:"nombre"`
	Email string `json:"correo"`
	Phone string `json:"numero"`
}

// UpdateWorkerRequest entrada para actualizar un trabajador.
type UpdateWorkerRequest struct {
	Name  *string `json:"nombre"`
	Email *string `json:"correo"`
	Phone *string `json:"numero"`
}

// WorkerResponse salida de un trabajador.
type WorkerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Phone     string    `json:"numero,omitempty"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// WorkerListResponse lista paginada de trabajadores.
type WorkerListResponse struct {
	Items []WorkerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
