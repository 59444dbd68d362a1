package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/validate"
)

// TherapistUseCase CRUD de terapeutas.
type TherapistUseCase struct {
	therapistRepo repository.TherapistRepository
}

func NewTherapistUseCase(therapistRepo repository.TherapistRepository) *TherapistUseCase {
	return &TherapistUseCase{therapistRepo: therapistRepo}
}

func (uc *TherapistUseCase) Create(in dto.TherapistRequest) (*dto.TherapistResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	now := time.Now()
	therapist := &entity.Therapist{
		ID:            uuid.New().String(),
		Name:          in.Name,
		FeePercentage: decimal.NewFromInt(in.FeePercentage),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.IsActive != nil {
		therapist.IsActive = *in.IsActive
	}
	if err := uc.therapistRepo.Create(therapist); err != nil {
		return nil, err
	}
	return toTherapistResponse(therapist), nil
}

// List devuelve todos los terapeutas; activeOnly filtra los inactivos.
func (uc *TherapistUseCase) List(activeOnly bool) ([]dto.TherapistResponse, error) {
	var (
		therapists []*entity.Therapist
		err        error
	)
	if activeOnly {
		therapists, err = uc.therapistRepo.ListActive()
	} else {
		therapists, err = uc.therapistRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TherapistResponse, 0, len(therapists))
	for _, t := range therapists {
		out = append(out, *toTherapistResponse(t))
	}
	return out, nil
}

func (uc *TherapistUseCase) Update(id string, in dto.TherapistRequest) (*dto.TherapistResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	therapist, err := uc.therapistRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, domain.ErrTherapistNotFound
	}
	therapist.Name = in.Name
	therapist.FeePercentage = decimal.NewFromInt(in.FeePercentage)
	if in.IsActive != nil {
		therapist.IsActive = *in.IsActive
	}
	therapist.UpdatedAt = time.Now()
	if err := uc.therapistRepo.Update(therapist); err != nil {
		return nil, err
	}
	return toTherapistResponse(therapist), nil
}

func (uc *TherapistUseCase) Delete(id string) error {
	therapist, err := uc.therapistRepo.GetByID(id)
	if err != nil {
		return err
	}
	if therapist == nil {
		return domain.ErrTherapistNotFound
	}
	return uc.therapistRepo.Delete(id)
}

func toTherapistResponse(t *entity.Therapist) *dto.TherapistResponse {
	return &dto.TherapistResponse{
		ID:            t.ID,
		Name:          t.Name,
		FeePercentage: t.FeePercentage.IntPart(),
		IsActive:      t.IsActive,
	}
}
