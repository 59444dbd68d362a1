package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para el documento único de Settings.
type SettingsRepository interface {
	// Get devuelve los settings actuales o nil si nunca se han guardado.
	Get() (*entity.Settings, error)
	// Upsert crea o actualiza el documento único.
	Upsert(settings *entity.Settings) error
}
