package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

// WorkerUseCase casos de uso CRUD para trabajadores.
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create crea un trabajador. El correo es único.
func (uc *WorkerUseCase) Create(in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	worker := &entity.Worker{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetByID obtiene un trabajador. Retorna nil, nil si no existe.
func (uc *WorkerUseCase) GetByID(id string) (*dto.WorkerResponse, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	return toWorkerResponse(worker), nil
}

// Update actualiza un trabajador.
func (uc *WorkerUseCase) Update(id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	if in.Email != nil && *in.Email != worker.Email {
		existing, _ := uc.repo.GetByEmail(*in.Email)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		worker.Email = *in.Email
	}
	if in.Name != nil {
		worker.Name = *in.Name
	}
	if in.Phone != nil {
		worker.Phone = *in.Phone
	}
	worker.UpdatedAt = time.Now()
	if err := uc.repo.Update(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// List lista trabajadores con paginación.
func (uc *WorkerUseCase) List(limit, offset int) (*dto.WorkerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return &dto.WorkerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un trabajador.
func (uc *WorkerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Phone:     w.Phone,
		CreatedAt: w.CreatedAt,
	}
}
