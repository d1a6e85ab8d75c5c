package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

var _ repository.CashierRepository = (*CashierRepo)(nil)

// CashierRepo implementación de CashierRepository sobre PostgreSQL.
type CashierRepo struct {
	q Querier
}

// NewCashierRepository construye el adaptador.
func NewCashierRepository(q Querier) *CashierRepo {
	return &CashierRepo{q: q}
}

// Create persiste un nuevo cajero. El código de empleado es único.
func (r *CashierRepo) Create(cashier *entity.Cashier) error {
	query := `
		INSERT INTO cajeros (id, nombre, apellidos, codigo_empleado, telefono, email, activo, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cashier.ID, cashier.FirstName, cashier.LastName, cashier.EmployeeCode,
		cashier.Phone, cashier.Email, cashier.Active, cashier.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cashier: %w", err)
	}
	return nil
}

// GetByID obtiene un cajero por ID. Retorna nil, nil si no existe.
func (r *CashierRepo) GetByID(id string) (*entity.Cashier, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByEmployeeCode obtiene un cajero por código de empleado.
func (r *CashierRepo) GetByEmployeeCode(code string) (*entity.Cashier, error) {
	return r.getOne(`WHERE codigo_empleado = $1`, code)
}

func (r *CashierRepo) getOne(where string, arg any) (*entity.Cashier, error) {
	query := `
		SELECT id, nombre, apellidos, codigo_empleado, telefono, email, activo, fecha_registro
		FROM cajeros ` + where
	var c entity.Cashier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.EmployeeCode, &c.Phone, &c.Email, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cashier: %w", err)
	}
	return &c, nil
}

// Update actualiza un cajero existente.
func (r *CashierRepo) Update(cashier *entity.Cashier) error {
	query := `
		UPDATE cajeros SET nombre = $2, apellidos = $3, codigo_empleado = $4, telefono = $5, email = $6, activo = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cashier.ID, cashier.FirstName, cashier.LastName, cashier.EmployeeCode,
		cashier.Phone, cashier.Email, cashier.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cashier: %w", err)
	}
	return nil
}

// List lista cajeros ordenados por nombre (orden del API original).
func (r *CashierRepo) List(limit, offset int) ([]*entity.Cashier, error) {
	query := `
		SELECT id, nombre, apellidos, codigo_empleado, telefono, email, activo, fecha_registro
		FROM cajeros ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cashiers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cashier
	for rows.Next() {
		var c entity.Cashier
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.EmployeeCode, &c.Phone, &c.Email, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cashier: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cajero por ID.
func (r *CashierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cajeros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cashier: %w", err)
	}
	return nil
}
