package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

// VoucherRepo implementación del puerto VoucherRepository sobre PostgreSQL.
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository construye el adaptador de vouchers. Pasar pool o tx (Querier).
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: q}
}

const voucherColumns = `id, code, description, type, value, is_active, created_by, created_at, updated_at`

func scanVoucher(row pgx.Row) (*entity.Voucher, error) {
	var v entity.Voucher
	var createdBy *string
	err := row.Scan(&v.ID, &v.Code, &v.Description, &v.Type, &v.Value,
		&v.IsActive, &createdBy, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.CreatedBy = emptyIfNull(createdBy)
	return &v, nil
}

// Create persiste un voucher nuevo. El código es único.
func (r *VoucherRepo) Create(voucher *entity.Voucher) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO vouchers (id, code, description, type, value, is_active, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		voucher.ID, voucher.Code, voucher.Description, voucher.Type, voucher.Value,
		voucher.IsActive, nullIfEmpty(voucher.CreatedBy), voucher.CreatedAt, voucher.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert voucher: %w", err)
	}
	return nil
}

// GetByID obtiene un voucher por ID.
func (r *VoucherRepo) GetByID(id string) (*entity.Voucher, error) {
	v, err := scanVoucher(r.q.QueryRow(context.Background(),
		`SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	return v, nil
}

// GetByCode obtiene un voucher por código.
func (r *VoucherRepo) GetByCode(code string) (*entity.Voucher, error) {
	v, err := scanVoucher(r.q.QueryRow(context.Background(),
		`SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher by code: %w", err)
	}
	return v, nil
}

// List devuelve todos los vouchers.
func (r *VoucherRepo) List() ([]*entity.Voucher, error) {
	return r.list(`SELECT ` + voucherColumns + ` FROM vouchers ORDER BY code`)
}

// ListActive devuelve solo los vouchers activos.
func (r *VoucherRepo) ListActive() ([]*entity.Voucher, error) {
	return r.list(`SELECT ` + voucherColumns + ` FROM vouchers WHERE is_active ORDER BY code`)
}

func (r *VoucherRepo) list(query string) ([]*entity.Voucher, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza un voucher.
func (r *VoucherRepo) Update(voucher *entity.Voucher) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vouchers SET code = $2, description = $3, type = $4, value = $5, is_active = $6, updated_at = $7
		 WHERE id = $1`,
		voucher.ID, voucher.Code, voucher.Description, voucher.Type, voucher.Value,
		voucher.IsActive, voucher.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update voucher: %w", err)
	}
	return nil
}

// Delete elimina un voucher por ID.
func (r *VoucherRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete voucher: %w", err)
	}
	return nil
}
