package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto (manual o generado por pérdida de stock).
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO expenses (id, description, amount, category, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		expense.ID, expense.Description, expense.Amount, expense.Category,
		expense.CreatedBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	var createdByName *string
	err := r.q.QueryRow(context.Background(),
		`SELECT e.id, e.description, e.amount, e.category, e.created_by, e.created_at, u.username
		 FROM expenses e LEFT JOIN users u ON u.id = e.created_by
		 WHERE e.id = $1`, id,
	).Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.CreatedBy, &e.CreatedAt, &createdByName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	e.CreatedByName = emptyIfNull(createdByName)
	return &e, nil
}

// List devuelve gastos con el nombre del creador, más recientes primero.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT e.id, e.description, e.amount, e.category, e.created_by, e.created_at, u.username
		 FROM expenses e LEFT JOIN users u ON u.id = e.created_by
		 ORDER BY e.created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		var createdByName *string
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category,
			&e.CreatedBy, &e.CreatedAt, &createdByName); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.CreatedByName = emptyIfNull(createdByName)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
