package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

// CashierUseCase casos de uso CRUD para cajeros.
type CashierUseCase struct {
	repo repository.CashierRepository
}

// NewCashierUseCase construye el caso de uso.
func NewCashierUseCase(repo repository.CashierRepository) *CashierUseCase {
	return &CashierUseCase{repo: repo}
}

// Create crea un cajero activo. El código de empleado es único.
func (uc *CashierUseCase) Create(in dto.CreateCashierRequest) (*dto.CashierResponse, error) {
	if in.FirstName == "" || in.EmployeeCode == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmployeeCode(in.EmployeeCode)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	cashier := &entity.Cashier{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmployeeCode: in.EmployeeCode,
		Phone:        in.Phone,
		Email:        in.Email,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(cashier); err != nil {
		return nil, err
	}
	return toCashierResponse(cashier), nil
}

// GetByID obtiene un cajero. Retorna nil, nil si no existe.
func (uc *CashierUseCase) GetByID(id string) (*dto.CashierResponse, error) {
	cashier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, nil
	}
	return toCashierResponse(cashier), nil
}

// Update actualiza un cajero (incluye desactivarlo cuando ya no labora).
func (uc *CashierUseCase) Update(id string, in dto.UpdateCashierRequest) (*dto.CashierResponse, error) {
	cashier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, nil
	}
	if in.EmployeeCode != nil && *in.EmployeeCode != cashier.EmployeeCode {
		existing, _ := uc.repo.GetByEmployeeCode(*in.EmployeeCode)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		cashier.EmployeeCode = *in.EmployeeCode
	}
	if in.FirstName != nil {
		cashier.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		cashier.LastName = *in.LastName
	}
	if in.Phone != nil {
		cashier.Phone = *in.Phone
	}
	if in.Email != nil {
		cashier.Email = *in.Email
	}
	if in.Active != nil {
		cashier.Active = *in.Active
	}
	if err := uc.repo.Update(cashier); err != nil {
		return nil, err
	}
	return toCashierResponse(cashier), nil
}

// List lista cajeros ordenados por nombre.
func (uc *CashierUseCase) List(limit, offset int) (*dto.CashierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashierResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCashierResponse(c))
	}
	return &dto.CashierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cajero.
func (uc *CashierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCashierResponse(c *entity.Cashier) *dto.CashierResponse {
	if c == nil {
		return nil
	}
	return &dto.CashierResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		EmployeeCode: c.EmployeeCode,
		Phone:        c.Phone,
		Email:        c.Email,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
