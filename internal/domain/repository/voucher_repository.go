package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// VoucherRepository define el puerto de persistencia para Voucher.
type VoucherRepository interface {
	Create(voucher *entity.Voucher) error
	GetByID(id string) (*entity.Voucher, error)
	// GetByCode busca por código (normalizado a mayúsculas por el caller).
	GetByCode(code string) (*entity.Voucher, error)
	List() ([]*entity.Voucher, error)
	ListActive() ([]*entity.Voucher, error)
	Update(voucher *entity.Voucher) error
	Delete(id string) error
}
