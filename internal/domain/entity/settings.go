package entity

import "time"

// Settings es el documento único de configuración de la tienda.
type Settings struct {
	CompanyName      string
	Address          string
	ExpiringSoonDays int // días para la alerta de productos por vencer
	UpdatedAt        time.Time
}
