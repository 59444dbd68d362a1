package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/validate"
)

// VoucherUseCase CRUD de vouchers de descuento. Los códigos se normalizan a
// mayúsculas y son únicos.
type VoucherUseCase struct {
	voucherRepo repository.VoucherRepository
}

func NewVoucherUseCase(voucherRepo repository.VoucherRepository) *VoucherUseCase {
	return &VoucherUseCase{voucherRepo: voucherRepo}
}

func (uc *VoucherUseCase) Create(createdBy string, in dto.VoucherRequest) (*dto.VoucherResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	existing, err := uc.voucherRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	voucher := &entity.Voucher{
		ID:          uuid.New().String(),
		Code:        code,
		Description: in.Description,
		Type:        in.Type,
		Value:       decimal.NewFromInt(in.Value),
		IsActive:    true,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		voucher.IsActive = *in.IsActive
	}
	if err := uc.voucherRepo.Create(voucher); err != nil {
		return nil, err
	}
	return toVoucherResponse(voucher), nil
}

// List devuelve todos los vouchers; activeOnly filtra los inactivos.
func (uc *VoucherUseCase) List(activeOnly bool) ([]dto.VoucherResponse, error) {
	var (
		vouchers []*entity.Voucher
		err      error
	)
	if activeOnly {
		vouchers, err = uc.voucherRepo.ListActive()
	} else {
		vouchers, err = uc.voucherRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, *toVoucherResponse(v))
	}
	return out, nil
}

func (uc *VoucherUseCase) Update(id string, in dto.VoucherRequest) (*dto.VoucherResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	voucher, err := uc.voucherRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, domain.ErrVoucherNotFound
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code != voucher.Code {
		existing, err := uc.voucherRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	voucher.Code = code
	voucher.Description = in.Description
	voucher.Type = in.Type
	voucher.Value = decimal.NewFromInt(in.Value)
	if in.IsActive != nil {
		voucher.IsActive = *in.IsActive
	}
	voucher.UpdatedAt = time.Now()
	if err := uc.voucherRepo.Update(voucher); err != nil {
		return nil, err
	}
	return toVoucherResponse(voucher), nil
}

// Validate resuelve un código en el checkout: devuelve el voucher solo si
// existe y está activo.
func (uc *VoucherUseCase) Validate(code string) (*dto.VoucherResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: code es requerido", domain.ErrInvalidInput)
	}
	voucher, err := uc.voucherRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if voucher == nil || !voucher.IsActive {
		return nil, domain.ErrVoucherNotFound
	}
	return toVoucherResponse(voucher), nil
}

func (uc *VoucherUseCase) Delete(id string) error {
	voucher, err := uc.voucherRepo.GetByID(id)
	if err != nil {
		return err
	}
	if voucher == nil {
		return domain.ErrVoucherNotFound
	}
	return uc.voucherRepo.Delete(id)
}

func toVoucherResponse(v *entity.Voucher) *dto.VoucherResponse {
	return &dto.VoucherResponse{
		ID:          v.ID,
		Code:        v.Code,
		Description: v.Description,
		Type:        v.Type,
		Value:       v.Value.IntPart(),
		IsActive:    v.IsActive,
	}
}
