package entity

import "time"

// Category agrupa productos para el catálogo y los filtros del POS.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
