package entity

import "time"

// Customer representa un cliente del negocio.
// Phone es único cuando está presente (se permiten varios clientes sin teléfono).
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
