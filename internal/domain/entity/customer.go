package entity

import "time"

// Ciudades con reparto.
const (
	CityArroyoCabral = "ac"
	CityLuca         = "lc"
)

// Customer representa un cliente.
type Customer struct {
	ID        string
	Name      string
	Celular   string
	Email     *string // único cuando está presente
	Address   string
	City      string // "ac" | "lc" | vacío
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Employee representa un empleado.
type Employee struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
