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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación de WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador.
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un nuevo trabajador. El correo es único.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO trabajadores (id, nombre, correo, numero, fecha_creacion, ultima_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Email, worker.Phone, worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID. Retorna nil, nil si no existe.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByEmail obtiene un trabajador por correo.
func (r *WorkerRepo) GetByEmail(email string) (*entity.Worker, error) {
	return r.getOne(`WHERE correo = $1`, email)
}

func (r *WorkerRepo) getOne(where string, arg any) (*entity.Worker, error) {
	query := `
		SELECT id, nombre, correo, numero, fecha_creacion, ultima_actualizacion
		FROM trabajadores ` + where
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&w.ID, &w.Name, &w.Email, &w.Phone, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// Update actualiza un trabajador existente.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE trabajadores SET nombre = $2, correo = $3, numero = $4, ultima_actualizacion = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Email, worker.Phone, worker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update worker: %w", err)
	}
	return nil
}

// List lista trabajadores con paginación.
func (r *WorkerRepo) List(limit, offset int) ([]*entity.Worker, error) {
	query := `
		SELECT id, nombre, correo, numero, fecha_creacion, ultima_actualizacion
		FROM trabajadores ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Email, &w.Phone, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete elimina un trabajador por ID.
func (r *WorkerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trabajadores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}
