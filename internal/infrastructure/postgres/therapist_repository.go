package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.TherapistRepository = (*TherapistRepo)(nil)

// TherapistRepo implementación del puerto TherapistRepository sobre PostgreSQL.
type TherapistRepo struct {
	q Querier
}

// NewTherapistRepository construye el adaptador de terapeutas. Pasar pool o tx (Querier).
func NewTherapistRepository(q Querier) *TherapistRepo {
	return &TherapistRepo{q: q}
}

const therapistColumns = `id, name, fee_percentage, is_active, created_at, updated_at`

func scanTherapist(row pgx.Row) (*entity.Therapist, error) {
	var t entity.Therapist
	err := row.Scan(&t.ID, &t.Name, &t.FeePercentage, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un terapeuta nuevo.
func (r *TherapistRepo) Create(therapist *entity.Therapist) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO therapists (id, name, fee_percentage, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		therapist.ID, therapist.Name, therapist.FeePercentage, therapist.IsActive,
		therapist.CreatedAt, therapist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert therapist: %w", err)
	}
	return nil
}

// GetByID obtiene un terapeuta por ID.
func (r *TherapistRepo) GetByID(id string) (*entity.Therapist, error) {
	t, err := scanTherapist(r.q.QueryRow(context.Background(),
		`SELECT `+therapistColumns+` FROM therapists WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	return t, nil
}

// List devuelve todos los terapeutas ordenados por nombre.
func (r *TherapistRepo) List() ([]*entity.Therapist, error) {
	return r.list(`SELECT ` + therapistColumns + ` FROM therapists ORDER BY name`)
}

// ListActive devuelve solo los terapeutas activos.
func (r *TherapistRepo) ListActive() ([]*entity.Therapist, error) {
	return r.list(`SELECT ` + therapistColumns + ` FROM therapists WHERE is_active ORDER BY name`)
}

func (r *TherapistRepo) list(query string) ([]*entity.Therapist, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}
	defer rows.Close()
	var list []*entity.Therapist
	for rows.Next() {
		t, err := scanTherapist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan therapist: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza un terapeuta.
func (r *TherapistRepo) Update(therapist *entity.Therapist) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE therapists SET name = $2, fee_percentage = $3, is_active = $4, updated_at = $5
		 WHERE id = $1`,
		therapist.ID, therapist.Name, therapist.FeePercentage, therapist.IsActive, therapist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update therapist: %w", err)
	}
	return nil
}

// Delete elimina un terapeuta por ID.
func (r *TherapistRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM therapists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete therapist: %w", err)
	}
	return nil
}
