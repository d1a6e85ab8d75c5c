package repository

import "github.com/omarvides/tienda-stock/internal/domain/entity"

// WorkerRepository define el puerto de persistencia para Worker.
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	GetByEmail(email string) (*entity.Worker, error)
	Update(worker *entity.Worker) error
	List(limit, offset int) ([]*entity.Worker, error)
	Delete(id string) error
}
