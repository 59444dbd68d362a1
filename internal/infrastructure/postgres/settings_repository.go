package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla settings tiene una sola fila (id = 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de settings. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración o nil si nunca se ha guardado.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(context.Background(),
		`SELECT company_name, address, expiring_soon_days, updated_at FROM settings WHERE id = 1`,
	).Scan(&s.CompanyName, &s.Address, &s.ExpiringSoonDays, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la fila única.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO settings (id, company_name, address, expiring_soon_days, updated_at)
		 VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id)
		 DO UPDATE SET company_name = EXCLUDED.company_name, address = EXCLUDED.address,
		               expiring_soon_days = EXCLUDED.expiring_soon_days, updated_at = EXCLUDED.updated_at`,
		settings.CompanyName, settings.Address, settings.ExpiringSoonDays, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
