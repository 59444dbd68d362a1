package usecase

import (
	"fmt"
	"time"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/validate"
)

// Valores por defecto cuando la tienda nunca ha guardado configuración.
const defaultExpiringSoonDays = 30

// SettingsUseCase documento único de configuración de la tienda.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// Get devuelve la configuración actual, o los valores por defecto si nunca
// se ha guardado.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{
			CompanyName:      "SPA POS",
			ExpiringSoonDays: defaultExpiringSoonDays,
		}
	}
	return toSettingsResponse(settings), nil
}

// Update crea o reemplaza el documento único.
func (uc *SettingsUseCase) Update(in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	settings := &entity.Settings{
		CompanyName:      in.CompanyName,
		Address:          in.Address,
		ExpiringSoonDays: in.ExpiringSoonDays,
		UpdatedAt:        time.Now(),
	}
	if err := uc.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName:      s.CompanyName,
		Address:          s.Address,
		ExpiringSoonDays: s.ExpiringSoonDays,
		UpdatedAt:        s.UpdatedAt,
	}
}
