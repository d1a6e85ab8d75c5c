package repository

import "github.com/omarvides/tienda-stock/internal/domain/entity"

// CashierRepository define el puerto de persistencia para Cashier.
// List ordena por nombre (orden del API original).
type CashierRepository interface {
	Create(cashier *entity.Cashier) error
	GetByID(id string) (*entity.Cashier, error)
	GetByEmployeeCode(code string) (*entity.Cashier, error)
	Update(cashier *entity.Cashier) error
	List(limit, offset int) ([]*entity.Cashier, error)
	Delete(id string) error
}
